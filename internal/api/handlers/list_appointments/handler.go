package list_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/appointments
// Query params: date (optional, YYYY-MM-DD) - только активные записи этого дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	var (
		list []domain.Appointment
		err  error
	)

	if dateStr != "" {
		date, parseErr := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if parseErr != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list, err = h.service.ListForDate(r.Context(), date)
	} else {
		list, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: date=%s, count=%d", dateStr, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
