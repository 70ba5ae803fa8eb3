package update_notification_preferences

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные настройки уведомлений"
)

// UpdatePreferencesRequest HTTP request model, все поля опциональны
type UpdatePreferencesRequest struct {
	Email         *bool `json:"email,omitempty"`
	WhatsApp      *bool `json:"whatsapp,omitempty"`
	ReminderHours *int  `json:"reminderHours,omitempty"`
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

// Handle PUT /api/v1/users/{userId}/notification-preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	current, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/{id}/notification-preferences - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if current.ID != userID && !current.IsAdmin() {
		h.logger.Warn("PUT /users/{id}/notification-preferences - Access denied: user_id=%s, requested=%s", current.ID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/notification-preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	prefs, err := h.notifications.UpdatePreferences(r.Context(), userID, domain.NotificationPreferencesPatch{
		Email:         req.Email,
		WhatsApp:      req.WhatsApp,
		ReminderHours: req.ReminderHours,
	})
	if err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("PUT /users/{id}/notification-preferences - Invalid data: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("PUT /users/{id}/notification-preferences - Failed to update preferences: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /users/{id}/notification-preferences - Preferences updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, prefs)
}
