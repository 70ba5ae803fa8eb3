package catalog

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения каталога услуг
	ErrLoad = errors.New("catalog.repository: failed to load services")

	// ErrSave возвращается при ошибке записи каталога услуг
	ErrSave = errors.New("catalog.repository: failed to save services")
)
