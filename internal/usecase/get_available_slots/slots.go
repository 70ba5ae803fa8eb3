package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateSlots строит сетку слотов дня и отмечает доступность каждого
// Слоты, начинающиеся раньше cutoff, помечаются недоступными (cutoff < 0 отключает проверку)
func generateSlots(
	hours domain.DayHours,
	appointments []domain.Appointment,
	durationMinutes int,
	stepMinutes int,
	cutoff int,
) ([]domain.TimeSlot, error) {
	schedule, err := domain.NewDaySchedule(hours, appointments)
	if err != nil {
		return nil, err
	}

	ticks := schedule.Ticks(stepMinutes)
	slots := make([]domain.TimeSlot, 0, len(ticks))

	for _, tick := range ticks {
		label, err := types.NewTimeStringFromMinutes(tick)
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", tick, err)
		}

		available := schedule.IsAvailable(tick, durationMinutes)
		if cutoff >= 0 && tick < cutoff {
			available = false
		}

		slots = append(slots, domain.TimeSlot{Time: label, Available: available})
	}

	return slots, nil
}

// pastCutoff возвращает минуту суток, раньше которой слоты сегодня уже прошли
// Для других дней возвращает -1
func pastCutoff(date, now time.Time) int {
	if !domain.SameDay(date, now) {
		return -1
	}
	return domain.MinuteOfDay(now)
}

func countAvailable(slots []domain.TimeSlot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}
