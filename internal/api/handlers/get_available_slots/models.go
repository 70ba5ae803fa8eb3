package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromSlots конвертирует слоты домена в HTTP модель
func FromSlots(slots []domain.TimeSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}
	return result
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: FromSlots(resp.Slots),
	}
}

// ParseDuration разбирает query параметр durationMinutes (пустое значение означает 0)
func ParseDuration(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	duration, err := strconv.Atoi(raw)
	if err != nil || duration <= 0 {
		return 0, fmt.Errorf("invalid durationMinutes %q", raw)
	}
	return duration, nil
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, serviceID, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	duration, err := ParseDuration(durationStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:            date,
		ServiceID:       serviceID,
		DurationMinutes: duration,
	}, nil
}
