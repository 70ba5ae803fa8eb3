package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/email"
)

// EmailSender интерфейс отправки писем
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

// WhatsAppSender интерфейс отправки сообщений WhatsApp
type WhatsAppSender interface {
	Send(ctx context.Context, cfg domain.WhatsAppConfig, phone, text string) error
}

// SettingsRepository интерфейс репозитория настроек уведомлений
type SettingsRepository interface {
	GetPreferences(ctx context.Context, userID string) (domain.NotificationPreferences, error)
	SavePreferences(ctx context.Context, userID string, prefs domain.NotificationPreferences) error
	GetWhatsAppConfig(ctx context.Context) (*domain.WhatsAppConfig, error)
	SaveWhatsAppConfig(ctx context.Context, cfg domain.WhatsAppConfig) error
}

// Metrics интерфейс метрик уведомлений
type Metrics interface {
	IncNotification(channel, kind string, ok bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
