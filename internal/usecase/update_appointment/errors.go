package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrInvalidStatus возвращается при недопустимом статусе или переходе
	ErrInvalidStatus = errors.New("update_appointment: invalid status transition")

	// ErrBusinessClosed возвращается, когда в новую дату не работаем
	ErrBusinessClosed = errors.New("update_appointment: business is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда новое время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("update_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда перенесённая запись пересекается с обедом, закрытием или другой записью
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
