package get_whatsapp_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

const msgNotConfigured = "WhatsApp не настроен"

// visibleKeyChars сколько последних символов ключа показывается в ответе
const visibleKeyChars = 4

type Handler struct {
	notifications NotificationService
	logger        Logger
}

func NewHandler(notifications NotificationService, logger Logger) *Handler {
	return &Handler{
		notifications: notifications,
		logger:        logger,
	}
}

// Handle GET /api/v1/whatsapp-config
// API ключ в ответе замаскирован
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.notifications.GetWhatsAppConfig(r.Context())
	if err != nil {
		if errors.Is(err, notifications.ErrWhatsAppNotConfigured) {
			h.logger.Warn("GET /whatsapp-config - WhatsApp is not configured")
			handlers.RespondNotFound(w, msgNotConfigured)
			return
		}
		h.logger.Error("GET /whatsapp-config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /whatsapp-config - Config retrieved: baseUrl=%s", cfg.BaseURL)
	handlers.RespondJSON(w, http.StatusOK, domain.WhatsAppConfig{
		APIKey:   maskKey(cfg.APIKey),
		SenderID: cfg.SenderID,
		BaseURL:  cfg.BaseURL,
	})
}

func maskKey(key string) string {
	if len(key) <= visibleKeyChars {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visibleKeyChars) + key[len(key)-visibleKeyChars:]
}
