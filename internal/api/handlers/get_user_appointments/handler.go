package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	users   UserService
	logger  Logger
}

func NewHandler(service AppointmentService, users UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		users:   users,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	current, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/appointments - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Пользователь видит только свою историю, администратор любую
	if current.ID != userID && !current.IsAdmin() {
		h.logger.Warn("GET /users/{id}/appointments - Access denied: user_id=%s, requested=%s", current.ID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	target, err := h.users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/{id}/appointments - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/{id}/appointments - Failed to get user: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	list, err := h.service.ListForClient(r.Context(), target.Email)
	if err != nil {
		h.logger.Error("GET /users/{id}/appointments - Failed to list appointments: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/appointments - Appointments retrieved successfully: user_id=%s, count=%d",
		userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
