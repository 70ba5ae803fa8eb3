package whatsapp

import "errors"

var (
	// ErrNotConfigured возвращается, когда конфигурация API не заполнена
	ErrNotConfigured = errors.New("whatsapp client: api is not configured")

	// ErrMissingPhone возвращается, когда не указан номер получателя
	ErrMissingPhone = errors.New("whatsapp client: phone number is required")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrRejected возвращается, когда API не подтвердило отправку
	ErrRejected = errors.New("whatsapp client: message rejected")
)
