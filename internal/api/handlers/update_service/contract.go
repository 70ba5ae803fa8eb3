package update_service

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type CatalogService interface {
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
