package appointment

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения записей из хранилища
	ErrLoad = errors.New("appointment.repository: failed to load appointments")

	// ErrSave возвращается при ошибке записи в хранилище
	ErrSave = errors.New("appointment.repository: failed to save appointments")
)
