package update_appointment

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// Request модель запроса на изменение записи
type Request struct {
	AppointmentID string                  // ID записи
	ServiceID     *string                 // Новая услуга из каталога (опционально)
	Patch         domain.AppointmentPatch // Изменения полей записи, кроме услуги
}
