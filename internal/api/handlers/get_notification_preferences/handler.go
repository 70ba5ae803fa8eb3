package get_notification_preferences

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

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

// Handle GET /api/v1/users/{userId}/notification-preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	current, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/notification-preferences - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if current.ID != userID && !current.IsAdmin() {
		h.logger.Warn("GET /users/{id}/notification-preferences - Access denied: user_id=%s, requested=%s", current.ID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	prefs, err := h.notifications.GetPreferences(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/notification-preferences - Failed to get preferences: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/notification-preferences - Preferences retrieved: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, prefs)
}
