package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidDayOfWeek   = "день недели должен быть числом от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные часы работы"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	IsOpen     bool              `json:"isOpen"`
	OpenTime   types.TimeString  `json:"openTime"`
	CloseTime  types.TimeString  `json:"closeTime"`
	LunchStart *types.TimeString `json:"lunchStart,omitempty"`
	LunchEnd   *types.TimeString `json:"lunchEnd,omitempty"`
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

// Handle PUT /api/v1/business-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil || day < 0 || day > 6 {
		h.logger.Warn("PUT /business-hours/{day} - Invalid day of week: %q", mux.Vars(r)["dayOfWeek"])
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours := domain.BusinessHours{
		DayOfWeek:  day,
		IsOpen:     req.IsOpen,
		OpenTime:   req.OpenTime,
		CloseTime:  req.CloseTime,
		LunchStart: req.LunchStart,
		LunchEnd:   req.LunchEnd,
	}

	if err := h.calendar.UpdateBusinessHours(r.Context(), hours); err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			h.logger.Warn("PUT /business-hours/{day} - Invalid data: day=%d, error=%v", day, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("PUT /business-hours/{day} - Failed to update business hours: day=%d, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /business-hours/{day} - Business hours updated successfully: day=%d", day)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
