package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/email"
)

// Service сервис уведомлений клиентов
// Отправка всегда best-effort: ошибки каналов логируются и учитываются в метриках
type Service struct {
	repo         SettingsRepository
	email        EmailSender
	whatsapp     WhatsAppSender
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// emailSender, whatsappSender и metrics могут быть nil
func NewService(
	repo SettingsRepository,
	emailSender EmailSender,
	whatsappSender WhatsAppSender,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		email:        emailSender,
		whatsapp:     whatsappSender,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// SendConfirmation отправляет подтверждение записи
func (s *Service) SendConfirmation(ctx context.Context, appt domain.Appointment) bool {
	return s.notify(ctx, domain.NotificationConfirmation, appt, true, true)
}

// SendCancellation отправляет уведомление об отмене записи
func (s *Service) SendCancellation(ctx context.Context, appt domain.Appointment) bool {
	return s.notify(ctx, domain.NotificationCancellation, appt, true, true)
}

// SendReminder отправляет напоминание о записи
func (s *Service) SendReminder(ctx context.Context, appt domain.Appointment) bool {
	return s.notify(ctx, domain.NotificationReminder, appt, true, true)
}

// notify отправляет сообщение по разрешённым каналам
// Возвращает true, если хотя бы один канал доставил сообщение
func (s *Service) notify(ctx context.Context, kind domain.NotificationKind, appt domain.Appointment, viaEmail, viaWhatsApp bool) bool {
	msg := buildMessage(kind, appt)
	delivered := false

	if viaEmail && s.email != nil && appt.Client.Email != "" {
		err := s.email.Send(ctx, email.Message{
			To:      appt.Client.Email,
			ToName:  appt.Client.Name,
			Subject: msg.Subject,
			Body:    msg.Body,
		})
		s.observe(ChannelEmail, kind, err)
		if err != nil {
			s.logger.Error("notify: %s email for appointment id=%s failed: %v", kind, appt.ID, err)
		} else {
			delivered = true
		}
	}

	if viaWhatsApp && appt.Client.HasPhone() {
		cfg, ok := s.whatsAppConfig(ctx)
		if ok {
			err := s.whatsapp.Send(ctx, *cfg, *appt.Client.Phone, msg.Body)
			s.observe(ChannelWhatsApp, kind, err)
			if err != nil {
				s.logger.Error("notify: %s whatsapp for appointment id=%s failed: %v", kind, appt.ID, err)
			} else {
				delivered = true
			}
		}
	}

	s.logger.Info("notify: %s for appointment id=%s, delivered=%t", kind, appt.ID, delivered)
	return delivered
}

// SendTest отправляет тестовое сообщение на email или номер WhatsApp
func (s *Service) SendTest(ctx context.Context, contact string, isEmail bool) bool {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return false
	}

	if isEmail {
		if s.email == nil {
			return false
		}
		err := s.email.Send(ctx, email.Message{To: contact, Subject: "Test notification", Body: testMessage})
		s.observe(ChannelEmail, "test", err)
		if err != nil {
			s.logger.Error("SendTest: email to %s failed: %v", contact, err)
			return false
		}
		return true
	}

	cfg, ok := s.whatsAppConfig(ctx)
	if !ok {
		return false
	}
	err := s.whatsapp.Send(ctx, *cfg, contact, testMessage)
	s.observe(ChannelWhatsApp, "test", err)
	if err != nil {
		s.logger.Error("SendTest: whatsapp to %s failed: %v", contact, err)
		return false
	}
	return true
}

// GetPreferences возвращает настройки уведомлений пользователя
func (s *Service) GetPreferences(ctx context.Context, userID string) (domain.NotificationPreferences, error) {
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		s.logger.Error("GetPreferences: repository error for user=%s: %v", userID, err)
		return prefs, fmt.Errorf("%w: GetPreferences - repository error: %v", ErrInternal, err)
	}
	return prefs, nil
}

// UpdatePreferences частично обновляет настройки уведомлений пользователя
func (s *Service) UpdatePreferences(ctx context.Context, userID string, patch domain.NotificationPreferencesPatch) (domain.NotificationPreferences, error) {
	s.logger.Info("UpdatePreferences: user=%s", userID)

	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return prefs, err
	}

	patch.ApplyTo(&prefs)
	if prefs.ReminderHours <= 0 || prefs.ReminderHours > domain.MaxReminderHours {
		return prefs, fmt.Errorf("%w: reminderHours must be between 1 and %d", ErrInvalidInput, domain.MaxReminderHours)
	}

	if err := s.repo.SavePreferences(ctx, userID, prefs); err != nil {
		s.logger.Error("UpdatePreferences: failed to save for user=%s: %v", userID, err)
		return prefs, fmt.Errorf("%w: UpdatePreferences - repository error: %v", ErrInternal, err)
	}
	return prefs, nil
}

// GetWhatsAppConfig возвращает сохранённую конфигурацию WhatsApp
func (s *Service) GetWhatsAppConfig(ctx context.Context) (*domain.WhatsAppConfig, error) {
	cfg, err := s.repo.GetWhatsAppConfig(ctx)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrConfigNotFound) {
			return nil, ErrWhatsAppNotConfigured
		}
		s.logger.Error("GetWhatsAppConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWhatsAppConfig - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// SetWhatsAppConfig сохраняет конфигурацию WhatsApp
func (s *Service) SetWhatsAppConfig(ctx context.Context, cfg domain.WhatsAppConfig) error {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.SenderID = strings.TrimSpace(cfg.SenderID)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if !cfg.IsComplete() {
		return fmt.Errorf("%w: apiKey, senderId and baseUrl are required", ErrInvalidInput)
	}

	if err := s.repo.SaveWhatsAppConfig(ctx, cfg); err != nil {
		s.logger.Error("SetWhatsAppConfig: failed to save: %v", err)
		return fmt.Errorf("%w: SetWhatsAppConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWhatsAppConfig: whatsapp configured, baseUrl=%s", cfg.BaseURL)
	return nil
}

// CheckUpcoming находит записи пользователя, по которым пора напомнить, и отправляет напоминания
// по каналам, включённым в его настройках
func (s *Service) CheckUpcoming(ctx context.Context, userID, userEmail string, appointments []domain.Appointment) ([]Reminder, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	due := DueReminders(userEmail, prefs, appointments, s.timeProvider.Now())
	for i := range due {
		due[i].Sent = s.notify(ctx, domain.NotificationReminder, due[i].Appointment, prefs.Email, prefs.WhatsApp)
	}

	s.logger.Info("CheckUpcoming: user=%s, due reminders=%d", userID, len(due))
	return due, nil
}

// DueReminders возвращает запланированные записи клиента, до начала которых
// осталось больше нуля и не больше reminderHours часов
func DueReminders(userEmail string, prefs domain.NotificationPreferences, appointments []domain.Appointment, now time.Time) []Reminder {
	window := time.Duration(prefs.ReminderHours) * time.Hour
	result := make([]Reminder, 0)

	for _, appt := range appointments {
		if appt.Status != domain.StatusScheduled || !strings.EqualFold(appt.Client.Email, userEmail) {
			continue
		}

		until := appt.Date.Sub(now)
		if until <= 0 || until > window {
			continue
		}

		result = append(result, Reminder{
			Appointment: appt,
			HoursUntil:  int(until.Hours()),
		})
	}

	return result
}

// whatsAppConfig возвращает конфигурацию, если канал WhatsApp доступен
func (s *Service) whatsAppConfig(ctx context.Context) (*domain.WhatsAppConfig, bool) {
	if s.whatsapp == nil {
		return nil, false
	}

	cfg, err := s.repo.GetWhatsAppConfig(ctx)
	if err != nil {
		if !errors.Is(err, notificationRepo.ErrConfigNotFound) {
			s.logger.Error("whatsAppConfig: repository error: %v", err)
		}
		return nil, false
	}
	if !cfg.IsComplete() {
		return nil, false
	}
	return cfg, true
}

func (s *Service) observe(channel string, kind domain.NotificationKind, err error) {
	if s.metrics != nil {
		s.metrics.IncNotification(channel, string(kind), err == nil)
	}
}
