package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CalendarService interface {
	UpdateBusinessHours(ctx context.Context, day domain.BusinessHours) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
