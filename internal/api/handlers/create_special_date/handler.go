package create_special_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные особой даты"
)

// CreateSpecialDateRequest HTTP request model
type CreateSpecialDateRequest struct {
	Date        string            `json:"date"`
	IsOpen      bool              `json:"isOpen"`
	OpenTime    *types.TimeString `json:"openTime,omitempty"`
	CloseTime   *types.TimeString `json:"closeTime,omitempty"`
	LunchStart  *types.TimeString `json:"lunchStart,omitempty"`
	LunchEnd    *types.TimeString `json:"lunchEnd,omitempty"`
	Description string            `json:"description"`
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

// Handle POST /api/v1/special-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSpecialDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /special-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		h.logger.Warn("POST /special-dates - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	sd, err := h.calendar.AddSpecialDate(r.Context(), domain.SpecialDateInput{
		Date:        date,
		IsOpen:      req.IsOpen,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		LunchStart:  req.LunchStart,
		LunchEnd:    req.LunchEnd,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			h.logger.Warn("POST /special-dates - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /special-dates - Failed to create special date: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /special-dates - Special date created successfully: id=%s, date=%s", sd.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, sd)
}
