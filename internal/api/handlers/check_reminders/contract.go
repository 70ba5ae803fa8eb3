package check_reminders

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

type AppointmentService interface {
	ListForClient(ctx context.Context, email string) ([]domain.Appointment, error)
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

type NotificationService interface {
	CheckUpcoming(ctx context.Context, userID, userEmail string, appointments []domain.Appointment) ([]notifications.Reminder, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
