package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
)

// Repository репозиторий настроек уведомлений
// Настройки пользователя хранятся под notification_prefs_<userId>, конфигурация WhatsApp под whatsapp_api_config
type Repository struct {
	store  kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория настроек уведомлений
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// GetPreferences возвращает настройки пользователя или настройки по умолчанию
func (r *Repository) GetPreferences(ctx context.Context, userID string) (domain.NotificationPreferences, error) {
	prefs := domain.DefaultNotificationPreferences()

	_, err := kv.LoadJSON(ctx, r.store, preferencesKey(userID), &prefs)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("GetPreferences: stored preferences of user=%s are corrupted, using defaults: %v", userID, err)
			return domain.DefaultNotificationPreferences(), nil
		}
		return prefs, fmt.Errorf("%w: GetPreferences: %v", ErrLoad, err)
	}

	return prefs, nil
}

// SavePreferences сохраняет настройки пользователя
func (r *Repository) SavePreferences(ctx context.Context, userID string, prefs domain.NotificationPreferences) error {
	if err := kv.SaveJSON(ctx, r.store, preferencesKey(userID), prefs); err != nil {
		return fmt.Errorf("%w: SavePreferences: %v", ErrSave, err)
	}
	return nil
}

// GetWhatsAppConfig возвращает конфигурацию WhatsApp или ErrConfigNotFound
func (r *Repository) GetWhatsAppConfig(ctx context.Context) (*domain.WhatsAppConfig, error) {
	var cfg domain.WhatsAppConfig

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyWhatsAppConfig, &cfg)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("GetWhatsAppConfig: stored config is corrupted, ignoring: %v", err)
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: GetWhatsAppConfig: %v", ErrLoad, err)
	}
	if !found {
		return nil, ErrConfigNotFound
	}

	return &cfg, nil
}

// SaveWhatsAppConfig сохраняет конфигурацию WhatsApp
func (r *Repository) SaveWhatsAppConfig(ctx context.Context, cfg domain.WhatsAppConfig) error {
	if err := kv.SaveJSON(ctx, r.store, domain.KeyWhatsAppConfig, cfg); err != nil {
		return fmt.Errorf("%w: SaveWhatsAppConfig: %v", ErrSave, err)
	}
	return nil
}

func preferencesKey(userID string) string {
	return domain.KeyNotificationPrefs + userID
}
