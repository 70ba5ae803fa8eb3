package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return ValidateDuration(req.ServiceID, req.DurationMinutes)
}

// ValidateDuration проверяет, что задана длительность или услуга
func ValidateDuration(serviceID string, durationMinutes int) error {
	if durationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if durationMinutes == 0 && serviceID == "" {
		return fmt.Errorf("%w: serviceId or durationMinutes is required", ErrInvalidInput)
	}
	if durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}
	return nil
}
