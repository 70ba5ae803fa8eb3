package get_user_appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type AppointmentService interface {
	ListForClient(ctx context.Context, email string) ([]domain.Appointment, error)
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
