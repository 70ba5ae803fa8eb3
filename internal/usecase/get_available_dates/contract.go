package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CalendarService интерфейс бизнес-календаря
type CalendarService interface {
	IsDateAvailable(ctx context.Context, date time.Time) (bool, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	ResolveDuration(ctx context.Context, serviceID string, durationMinutes int) (int, error)
	SlotsForDate(ctx context.Context, date time.Time, durationMinutes int) ([]domain.TimeSlot, error)
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
