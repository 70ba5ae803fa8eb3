package calendar

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения календаря из хранилища
	ErrLoad = errors.New("calendar.repository: failed to load calendar")

	// ErrSave возвращается при ошибке записи календаря в хранилище
	ErrSave = errors.New("calendar.repository: failed to save calendar")
)
