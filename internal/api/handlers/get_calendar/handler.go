package get_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	BusinessHours []domain.BusinessHours `json:"businessHours"`
	SpecialDates  []domain.SpecialDate   `json:"specialDates"`
}

type Handler struct {
	calendar CalendarService
	logger   Logger
}

func NewHandler(calendar CalendarService, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.calendar.GetBusinessHours(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar - Failed to get business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	dates, err := h.calendar.ListSpecialDates(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar - Failed to list special dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - Calendar retrieved successfully: special_dates=%d", len(dates))
	handlers.RespondJSON(w, http.StatusOK, CalendarResponse{
		BusinessHours: hours,
		SpecialDates:  dates,
	})
}
