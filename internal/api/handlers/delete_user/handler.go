package delete_user

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgMissingUserID = "ID пользователя обязателен"
	msgNotFound      = "пользователь не найден"
	msgDeleteSelf    = "нельзя удалить собственную учётную запись"
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

// Handle DELETE /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		h.logger.Warn("DELETE /users/{id} - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	// Администратор не может удалить сам себя
	if currentID, ok := middleware.GetUserID(r.Context()); ok && currentID == userID {
		h.logger.Warn("DELETE /users/{id} - Attempt to delete self: user_id=%s", userID)
		handlers.RespondBadRequest(w, msgDeleteSelf)
		return
	}

	deleted, err := h.users.Delete(r.Context(), userID)
	if err != nil {
		h.logger.Error("DELETE /users/{id} - Failed to delete user: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}
	if !deleted {
		h.logger.Warn("DELETE /users/{id} - User not found: user_id=%s", userID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted successfully: user_id=%s", userID)
	handlers.RespondNoContent(w)
}
