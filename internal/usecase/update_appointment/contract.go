package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	Get(ctx context.Context, id string) (*domain.Service, error)
}

// CalendarService интерфейс бизнес-календаря
type CalendarService interface {
	GetHoursForDate(ctx context.Context, date time.Time) (*domain.DayHours, bool, error)
}

// Ledger интерфейс журнала записей
type Ledger interface {
	// UpdateChecked применяет изменения, вызывая validate под блокировкой журнала
	UpdateChecked(ctx context.Context, id string, patch domain.AppointmentPatch, validate appointments.RescheduleFunc) (*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
