package update_whatsapp_config

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type NotificationService interface {
	SetWhatsAppConfig(ctx context.Context, cfg domain.WhatsAppConfig) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
