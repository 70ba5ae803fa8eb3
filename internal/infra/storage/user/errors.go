package user

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения пользователей
	ErrLoad = errors.New("user.repository: failed to load users")

	// ErrSave возвращается при ошибке записи пользователей
	ErrSave = errors.New("user.repository: failed to save users")

	// ErrNoSession возвращается, когда нет авторизованного пользователя
	ErrNoSession = errors.New("user.repository: no authenticated user")
)
