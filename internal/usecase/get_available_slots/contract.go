package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CalendarService интерфейс бизнес-календаря
type CalendarService interface {
	// GetHoursForDate возвращает часы работы на дату или false, если в этот день закрыто
	GetHoursForDate(ctx context.Context, date time.Time) (*domain.DayHours, bool, error)
}

// AppointmentLister интерфейс журнала записей
type AppointmentLister interface {
	// ListForDate возвращает активные записи на календарный день
	ListForDate(ctx context.Context, date time.Time) ([]domain.Appointment, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	Get(ctx context.Context, id string) (*domain.Service, error)
}

// Metrics интерфейс метрик генерации слотов
type Metrics interface {
	ObserveSlots(total, available int)
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
