package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgMissingAppointmentID = "ID записи обязателен"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается RFC 3339"
	msgNotFound             = "запись не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidStatus        = "недопустимая смена статуса"
	msgInvalidData          = "некорректные данные записи"
	msgBusinessClosed       = "в выбранную дату запись не ведётся"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	appt, err := h.useCase.Execute(r.Context(), &updateAppointment.Request{
		AppointmentID: appointmentID,
		ServiceID:     req.ServiceID,
		Patch:         patch,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Service not found: service_id=%s", *req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id} - Invalid status change: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, updateAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrBusinessClosed):
			h.logger.Warn("PATCH /appointments/{id} - Business closed: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, updateAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /appointments/{id} - Invalid time slot: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid data: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appt)
}
