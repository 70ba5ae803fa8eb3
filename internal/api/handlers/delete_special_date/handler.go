package delete_special_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
)

const (
	msgMissingID = "ID особой даты обязателен"
	msgNotFound  = "особая дата не найдена"
)

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

// Handle DELETE /api/v1/special-dates/{specialDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["specialDateId"]
	if id == "" {
		h.logger.Warn("DELETE /special-dates/{id} - Missing special date ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.calendar.DeleteSpecialDate(r.Context(), id); err != nil {
		if errors.Is(err, calendar.ErrSpecialDateNotFound) {
			h.logger.Warn("DELETE /special-dates/{id} - Special date not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /special-dates/{id} - Failed to delete special date: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /special-dates/{id} - Special date deleted successfully: id=%s", id)
	handlers.RespondNoContent(w)
}
