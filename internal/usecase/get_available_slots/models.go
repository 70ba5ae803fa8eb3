package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение слотов
// Длительность задаётся либо напрямую, либо через услугу каталога
type Request struct {
	Date            time.Time // Дата (время суток игнорируется)
	ServiceID       string    // ID услуги (если DurationMinutes не задан)
	DurationMinutes int       // Длительность записи в минутах
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time         // Дата, на которую запрашивались слоты
	Slots []domain.TimeSlot // Все слоты сетки с признаком доступности
}
