package notifications

import "errors"

var (
	// ErrWhatsAppNotConfigured возвращается, когда конфигурация WhatsApp не задана
	ErrWhatsAppNotConfigured = errors.New("notifications: whatsapp is not configured")

	// ErrInvalidInput возвращается при некорректных настройках
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
