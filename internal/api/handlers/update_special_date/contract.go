package update_special_date

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CalendarService interface {
	UpdateSpecialDate(ctx context.Context, id string, patch domain.SpecialDatePatch) (*domain.SpecialDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
