package send_test_notification

import "context"

type NotificationService interface {
	SendTest(ctx context.Context, contact string, isEmail bool) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
