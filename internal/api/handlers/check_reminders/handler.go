package check_reminders

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgUserNotFound  = "пользователь не найден"
)

// ReminderResponse HTTP response model
type ReminderResponse struct {
	AppointmentID string `json:"appointmentId"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	HoursUntil    int    `json:"hoursUntil"`
	Sent          bool   `json:"sent"`
}

type Handler struct {
	appointments  AppointmentService
	users         UserService
	notifications NotificationService
	logger        Logger
}

func NewHandler(appointments AppointmentService, users UserService, notifications NotificationService, logger Logger) *Handler {
	return &Handler{
		appointments:  appointments,
		users:         users,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle GET /api/v1/users/{userId}/reminders
// Отправляет напоминания по записям, попавшим в окно из настроек пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	current, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reminders - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if current.ID != userID && !current.IsAdmin() {
		h.logger.Warn("GET /users/{id}/reminders - Access denied: user_id=%s, requested=%s", current.ID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	target, err := h.users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/{id}/reminders - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/{id}/reminders - Failed to get user: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	list, err := h.appointments.ListForClient(r.Context(), target.Email)
	if err != nil {
		h.logger.Error("GET /users/{id}/reminders - Failed to list appointments: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	due, err := h.notifications.CheckUpcoming(r.Context(), target.ID, target.Email, list)
	if err != nil {
		h.logger.Error("GET /users/{id}/reminders - Failed to check reminders: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := make([]ReminderResponse, 0, len(due))
	for _, rem := range due {
		resp = append(resp, ReminderResponse{
			AppointmentID: rem.Appointment.ID,
			ServiceName:   rem.Appointment.Service.Name,
			Date:          rem.Appointment.Date.Format(time.RFC3339),
			HoursUntil:    rem.HoursUntil,
			Sent:          rem.Sent,
		})
	}

	h.logger.Info("GET /users/{id}/reminders - Reminders checked: user_id=%s, due=%d", userID, len(resp))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
