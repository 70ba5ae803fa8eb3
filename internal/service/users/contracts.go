package users

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей и сессии
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, bool, error)
	SaveAll(ctx context.Context, users []domain.User) error
	GetSession(ctx context.Context) (*domain.User, error)
	SaveSession(ctx context.Context, u domain.User) error
	ClearSession(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
