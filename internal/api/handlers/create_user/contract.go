package create_user

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type UserService interface {
	Add(ctx context.Context, input domain.UserInput) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
