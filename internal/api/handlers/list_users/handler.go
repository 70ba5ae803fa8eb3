package list_users

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

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

// Handle GET /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users - Users retrieved successfully: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
