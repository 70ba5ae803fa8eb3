package login

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type UserService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
