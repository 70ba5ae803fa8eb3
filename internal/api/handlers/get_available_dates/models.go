package get_available_dates

import (
	slotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []DateWithSlots `json:"dates"`
}

// DateWithSlots открытый день горизонта
type DateWithSlots struct {
	Date           string              `json:"date"`
	AvailableCount int                 `json:"availableCount"`
	Slots          []slotsHandler.Slot `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]DateWithSlots, len(resp.Dates))
	for i := range resp.Dates {
		d := resp.Dates[i]
		dates[i] = DateWithSlots{
			Date:           d.Date.Format(domain.DateFormat),
			AvailableCount: d.AvailableCount(),
			Slots:          slotsHandler.FromSlots(d.Slots),
		}
	}
	return &AvailableDatesResponse{Dates: dates}
}
