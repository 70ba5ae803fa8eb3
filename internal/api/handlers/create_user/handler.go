package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные пользователя"
	msgEmailInUse         = "email уже зарегистрирован"
)

// CreateUserRequest HTTP request model
// Пустая роль означает клиента
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleClient
	}

	user, err := h.users.Add(r.Context(), domain.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailInUse):
			h.logger.Warn("POST /users - Email already in use: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailInUse)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /users - Failed to create user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%s, role=%s", user.ID, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
