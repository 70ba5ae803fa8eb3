package calendar

import "errors"

var (
	// ErrSpecialDateNotFound возвращается, когда особая дата не найдена
	ErrSpecialDateNotFound = errors.New("calendar: special date not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
