package create_service

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CatalogService interface {
	Add(ctx context.Context, input domain.ServiceInput) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
