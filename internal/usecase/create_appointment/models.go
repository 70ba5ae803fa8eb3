package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID string           // ID услуги из каталога
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Client    domain.Client    // Контакты клиента
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string                   // ID записи
	ServiceID       string                   // ID услуги
	ServiceName     string                   // Название услуги
	DurationMinutes int                      // Длительность в минутах
	Price           float64                  // Цена услуги
	Client          domain.Client            // Клиент
	Date            time.Time                // Начало записи
	Status          domain.AppointmentStatus // Статус записи
	Notes           *string                  // Заметки
}

func newResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		ServiceID:       appt.Service.ID,
		ServiceName:     appt.Service.Name,
		DurationMinutes: appt.Service.DurationMinutes,
		Price:           appt.Service.Price,
		Client:          appt.Client,
		Date:            appt.Date,
		Status:          appt.Status,
		Notes:           appt.Notes,
	}
}
