package email

import "errors"

var (
	// ErrMissingRecipient возвращается, когда не указан адрес получателя
	ErrMissingRecipient = errors.New("email sender: recipient is required")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("email sender: send failed")
)
