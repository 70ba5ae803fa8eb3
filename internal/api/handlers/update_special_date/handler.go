package update_special_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgMissingID          = "ID особой даты обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные особой даты"
	msgNotFound           = "особая дата не найдена"
)

// UpdateSpecialDateRequest HTTP request model, все поля опциональны
// clearLunch убирает обеденный перерыв
type UpdateSpecialDateRequest struct {
	Date        *string           `json:"date,omitempty"`
	IsOpen      *bool             `json:"isOpen,omitempty"`
	OpenTime    *types.TimeString `json:"openTime,omitempty"`
	CloseTime   *types.TimeString `json:"closeTime,omitempty"`
	LunchStart  *types.TimeString `json:"lunchStart,omitempty"`
	LunchEnd    *types.TimeString `json:"lunchEnd,omitempty"`
	ClearLunch  bool              `json:"clearLunch,omitempty"`
	Description *string           `json:"description,omitempty"`
}

// ToPatch конвертирует HTTP запрос в изменения особой даты
func (r *UpdateSpecialDateRequest) ToPatch() (domain.SpecialDatePatch, error) {
	patch := domain.SpecialDatePatch{
		IsOpen:      r.IsOpen,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		LunchStart:  r.LunchStart,
		LunchEnd:    r.LunchEnd,
		ClearLunch:  r.ClearLunch,
		Description: r.Description,
	}
	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	return patch, nil
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

// Handle PATCH /api/v1/special-dates/{specialDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["specialDateId"]
	if id == "" {
		h.logger.Warn("PATCH /special-dates/{id} - Missing special date ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req UpdateSpecialDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /special-dates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PATCH /special-dates/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	sd, err := h.calendar.UpdateSpecialDate(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrSpecialDateNotFound):
			h.logger.Warn("PATCH /special-dates/{id} - Special date not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PATCH /special-dates/{id} - Invalid data: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /special-dates/{id} - Failed to update special date: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /special-dates/{id} - Special date updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, sd)
}
