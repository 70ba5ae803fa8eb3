package update_whatsapp_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgIncompleteConfig   = "apiKey, senderId и baseUrl обязательны"
)

// UpdateWhatsAppConfigResponse HTTP response model
type UpdateWhatsAppConfigResponse struct {
	Configured bool `json:"configured"`
}

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

// Handle PUT /api/v1/whatsapp-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.WhatsAppConfig
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /whatsapp-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.notifications.SetWhatsAppConfig(r.Context(), req); err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("PUT /whatsapp-config - Incomplete config: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteConfig)
			return
		}
		h.logger.Error("PUT /whatsapp-config - Failed to save config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /whatsapp-config - WhatsApp configured successfully")
	handlers.RespondJSON(w, http.StatusOK, UpdateWhatsAppConfigResponse{Configured: true})
}
