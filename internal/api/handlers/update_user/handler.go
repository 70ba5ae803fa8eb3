package update_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

const (
	msgMissingUserID      = "ID пользователя обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные пользователя"
	msgEmailInUse         = "email уже зарегистрирован"
	msgNotFound           = "пользователь не найден"
)

// UpdateUserRequest HTTP request model, все поля опциональны
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// ToPatch конвертирует HTTP запрос в изменения пользователя
func (r *UpdateUserRequest) ToPatch() domain.UserPatch {
	patch := domain.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Role != nil {
		role := domain.UserRole(*r.Role)
		patch.Role = &role
	}
	return patch
}

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

// Handle PATCH /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		h.logger.Warn("PATCH /users/{id} - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.users.Update(r.Context(), userID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id} - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrEmailInUse):
			h.logger.Warn("PATCH /users/{id} - Email already in use: user_id=%s", userID)
			handlers.RespondConflict(w, msgEmailInUse)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{id} - Invalid data: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /users/{id} - Failed to update user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id} - User updated successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
