package delete_special_date

import "context"

type CalendarService interface {
	DeleteSpecialDate(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
