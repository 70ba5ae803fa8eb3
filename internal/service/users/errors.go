package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailInUse возвращается, когда email уже занят другим пользователем
	ErrEmailInUse = errors.New("users: email already in use")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrNotAuthenticated возвращается, когда нет авторизованного пользователя
	ErrNotAuthenticated = errors.New("users: not authenticated")

	// ErrInvalidInput возвращается при некорректных данных пользователя
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
