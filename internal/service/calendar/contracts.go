package calendar

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error)
	SaveBusinessHours(ctx context.Context, hours []domain.BusinessHours) error
	GetSpecialDates(ctx context.Context) ([]domain.SpecialDate, error)
	SaveSpecialDates(ctx context.Context, dates []domain.SpecialDate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
