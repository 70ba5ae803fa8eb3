package get_whatsapp_config

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type NotificationService interface {
	GetWhatsAppConfig(ctx context.Context) (*domain.WhatsAppConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
