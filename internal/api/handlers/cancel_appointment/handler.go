package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgMissingAppointmentID = "ID записи обязателен"
	msgNotFound             = "запись не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "запись нельзя отменить в текущем статусе"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing user")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Проверяем права до отмены
	existing, err := h.service.Get(r.Context(), appointmentID)
	if err != nil {
		h.respondServiceError(w, appointmentID, err)
		return
	}
	if !middleware.CanAccessClient(user, existing.Client.Email) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s", appointmentID, user.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	appt, err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		h.respondServiceError(w, appointmentID, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, appt)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, appointmentID string, err error) {
	switch {
	case errors.Is(err, appointments.ErrAppointmentNotFound):
		h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, appointments.ErrCannotCancel):
		h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
		handlers.RespondConflict(w, msgCannotCancel)

	default:
		h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
