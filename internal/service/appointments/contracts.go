package appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	SaveAll(ctx context.Context, appointments []domain.Appointment) error
}

// Notifier интерфейс отправки уведомлений клиенту
// Возвращает true, если хотя бы один канал доставил сообщение
type Notifier interface {
	SendConfirmation(ctx context.Context, appt domain.Appointment) bool
	SendCancellation(ctx context.Context, appt domain.Appointment) bool
	SendReminder(ctx context.Context, appt domain.Appointment) bool
}

// Metrics интерфейс метрик операций с записями
type Metrics interface {
	IncAppointmentOp(operation string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ValidateFunc проверяет новую запись относительно активных записей того же дня
// Вызывается под блокировкой журнала
type ValidateFunc func(sameDay []domain.Appointment) error

// RescheduleFunc проверяет изменённую запись относительно остальных активных записей её дня
// Вызывается под блокировкой журнала
type RescheduleFunc func(updated domain.Appointment, sameDay []domain.Appointment) error
