package get_notification_preferences

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type NotificationService interface {
	GetPreferences(ctx context.Context, userID string) (domain.NotificationPreferences, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
