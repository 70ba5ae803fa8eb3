package get_available_dates

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// Request модель запроса на получение дат с доступными слотами
type Request struct {
	ServiceID       string // ID услуги (если DurationMinutes не задан)
	DurationMinutes int    // Длительность записи в минутах
}

// Response модель ответа: открытые дни горизонта по возрастанию
type Response struct {
	Dates []domain.DateWithSlots
}
