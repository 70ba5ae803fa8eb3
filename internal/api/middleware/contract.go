package middleware

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UserProvider интерфейс получения пользователя по ID
type UserProvider interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
