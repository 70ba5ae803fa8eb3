package send_reminder

import "context"

type AppointmentService interface {
	SendReminder(ctx context.Context, id string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
