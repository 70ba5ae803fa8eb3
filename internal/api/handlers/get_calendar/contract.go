package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CalendarService interface {
	GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error)
	ListSpecialDates(ctx context.Context) ([]domain.SpecialDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
