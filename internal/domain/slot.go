package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TimeSlot is a candidate booking start on the slot grid. Recomputed on every query.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// DateWithSlots is one open day of the availability horizon
type DateWithSlots struct {
	Date  time.Time
	Slots []TimeSlot
}

// AvailableCount returns the number of available slots
func (d *DateWithSlots) AvailableCount() int {
	count := 0
	for _, s := range d.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
