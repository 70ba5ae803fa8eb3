package register

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type UserService interface {
	CreateClient(ctx context.Context, name, email, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
