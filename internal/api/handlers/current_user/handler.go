package current_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

const msgNotAuthenticated = "нет активной сессии"

type Handler struct {
	users  UserService
	logger Logger
}

func NewHandler(users UserService, logger Logger) *Handler {
	return &Handler{
		users:  users,
		logger: logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Current(r.Context())
	if err != nil {
		if errors.Is(err, users.ErrNotAuthenticated) {
			h.logger.Warn("GET /auth/me - No active session")
			handlers.RespondUnauthorized(w, msgNotAuthenticated)
			return
		}
		h.logger.Error("GET /auth/me - Failed to get current user: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /auth/me - Current user retrieved: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
