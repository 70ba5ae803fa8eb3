package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Interval is a time range of one day in minutes from midnight
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether a candidate interval collides with o.
// The candidate collides when its start falls in [o.Start, o.End),
// its end falls in (o.Start, o.End], or it covers o entirely.
func (i Interval) Overlaps(o Interval) bool {
	startInside := i.Start >= o.Start && i.Start < o.End
	endInside := i.End > o.Start && i.End <= o.End
	covers := i.Start <= o.Start && i.End >= o.End
	return startInside || endInside || covers
}

// AppointmentInterval returns the local wall-clock interval occupied by the appointment
func AppointmentInterval(a Appointment) Interval {
	start := MinuteOfDay(a.Date)
	return Interval{Start: start, End: start + a.Service.DurationMinutes}
}

// DaySchedule is the resolved schedule of one open day
type DaySchedule struct {
	Open  int
	Close int
	Lunch *Interval
	Busy  []Interval
}

// NewDaySchedule resolves hours and the active appointments of the same day into a schedule.
// Cancelled appointments never block time.
func NewDaySchedule(hours DayHours, appointments []Appointment) (*DaySchedule, error) {
	open, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("open time: %w", err)
	}
	closeAt, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("close time: %w", err)
	}

	schedule := &DaySchedule{Open: open, Close: closeAt}

	if hours.HasLunch() {
		lunch, err := minutesInterval(*hours.LunchStart, *hours.LunchEnd)
		if err != nil {
			return nil, fmt.Errorf("lunch: %w", err)
		}
		schedule.Lunch = &lunch
	}

	for _, a := range appointments {
		if !a.OccupiesSlot() {
			continue
		}
		schedule.Busy = append(schedule.Busy, AppointmentInterval(a))
	}

	return schedule, nil
}

// IsAvailable reports whether a booking of durationMinutes may start at minute start
func (d *DaySchedule) IsAvailable(start, durationMinutes int) bool {
	candidate := Interval{Start: start, End: start + durationMinutes}

	if candidate.End > d.Close {
		return false
	}
	if d.Lunch != nil && candidate.Overlaps(*d.Lunch) {
		return false
	}
	for _, busy := range d.Busy {
		if candidate.Overlaps(busy) {
			return false
		}
	}
	return true
}

// Ticks returns every grid start from the opening time, stepMinutes apart, before closing
func (d *DaySchedule) Ticks(stepMinutes int) []int {
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotStepMinutes
	}

	ticks := make([]int, 0)
	for t := d.Open; t < d.Close; t += stepMinutes {
		ticks = append(ticks, t)
	}
	return ticks
}

// IsTick reports whether minute start lies on the slot grid
func (d *DaySchedule) IsTick(start, stepMinutes int) bool {
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotStepMinutes
	}
	return start >= d.Open && start < d.Close && (start-d.Open)%stepMinutes == 0
}

func minutesInterval(from, to types.TimeString) (Interval, error) {
	start, err := from.Minutes()
	if err != nil {
		return Interval{}, err
	}
	end, err := to.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
