package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UpdateAppointmentRequest HTTP request model
// Все поля опциональны, date в формате RFC 3339
type UpdateAppointmentRequest struct {
	ServiceID *string        `json:"serviceId,omitempty"`
	Client    *domain.Client `json:"client,omitempty"`
	Date      *string        `json:"date,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	Status    *string        `json:"status,omitempty"`
}

// ToPatch конвертирует HTTP запрос в изменения записи (без услуги)
func (r *UpdateAppointmentRequest) ToPatch() (domain.AppointmentPatch, error) {
	patch := domain.AppointmentPatch{
		Client: r.Client,
		Notes:  r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(time.RFC3339, *r.Date)
		if err != nil {
			return patch, err
		}
		// смещение клиента не сохраняем: сетка и дни считаются в локальной зоне
		date = date.In(time.Local)
		patch.Date = &date
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		patch.Status = &status
	}

	return patch, nil
}
