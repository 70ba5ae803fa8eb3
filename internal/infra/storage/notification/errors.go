package notification

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения настроек уведомлений
	ErrLoad = errors.New("notification.repository: failed to load settings")

	// ErrSave возвращается при ошибке записи настроек уведомлений
	ErrSave = errors.New("notification.repository: failed to save settings")

	// ErrConfigNotFound возвращается, когда конфигурация WhatsApp не задана
	ErrConfigNotFound = errors.New("notification.repository: whatsapp config not found")
)
