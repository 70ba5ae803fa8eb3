package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BusinessHours is the weekly template for one day of the week.
// Exactly seven records exist, one per DayOfWeek (0 = Sunday).
type BusinessHours struct {
	DayOfWeek  int               `json:"dayOfWeek"`
	IsOpen     bool              `json:"isOpen"`
	OpenTime   types.TimeString  `json:"openTime"`
	CloseTime  types.TimeString  `json:"closeTime"`
	LunchStart *types.TimeString `json:"lunchStart,omitempty"`
	LunchEnd   *types.TimeString `json:"lunchEnd,omitempty"`
}

// HasLunch returns true if both lunch boundaries are set
func (b *BusinessHours) HasLunch() bool {
	return b.LunchStart != nil && b.LunchEnd != nil
}

// SpecialDate overrides the weekly template for one calendar day (holiday, custom hours).
// Only the calendar day of Date is significant.
type SpecialDate struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	IsOpen      bool              `json:"isOpen"`
	OpenTime    *types.TimeString `json:"openTime,omitempty"`
	CloseTime   *types.TimeString `json:"closeTime,omitempty"`
	LunchStart  *types.TimeString `json:"lunchStart,omitempty"`
	LunchEnd    *types.TimeString `json:"lunchEnd,omitempty"`
	Description string            `json:"description"`
}

// Matches returns true if the special date falls on the same calendar day as date
func (s *SpecialDate) Matches(date time.Time) bool {
	return SameDay(s.Date, date)
}

// SpecialDateInput is the data needed to create a special date
type SpecialDateInput struct {
	Date        time.Time
	IsOpen      bool
	OpenTime    *types.TimeString
	CloseTime   *types.TimeString
	LunchStart  *types.TimeString
	LunchEnd    *types.TimeString
	Description string
}

// SpecialDatePatch holds optional special date fields for partial updates.
// ClearLunch removes both lunch boundaries.
type SpecialDatePatch struct {
	Date        *time.Time
	IsOpen      *bool
	OpenTime    *types.TimeString
	CloseTime   *types.TimeString
	LunchStart  *types.TimeString
	LunchEnd    *types.TimeString
	ClearLunch  bool
	Description *string
}

// ApplyTo copies the non-nil fields onto the special date
func (p SpecialDatePatch) ApplyTo(s *SpecialDate) {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.IsOpen != nil {
		s.IsOpen = *p.IsOpen
	}
	if p.OpenTime != nil {
		s.OpenTime = p.OpenTime
	}
	if p.CloseTime != nil {
		s.CloseTime = p.CloseTime
	}
	if p.ClearLunch {
		s.LunchStart = nil
		s.LunchEnd = nil
	}
	if p.LunchStart != nil {
		s.LunchStart = p.LunchStart
	}
	if p.LunchEnd != nil {
		s.LunchEnd = p.LunchEnd
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
}

// DayHours are the effective opening hours of one calendar day
type DayHours struct {
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString
}

// HasLunch returns true if both lunch boundaries are set
func (h *DayHours) HasLunch() bool {
	return h.LunchStart != nil && h.LunchEnd != nil
}

// DefaultBusinessHours returns the weekly template used before any edit:
// Sunday closed, Monday-Friday 09:00-18:00 with lunch 12:00-13:00, Saturday 09:00-13:00.
func DefaultBusinessHours() []BusinessHours {
	hours := make([]BusinessHours, 0, DaysInWeek)
	hours = append(hours, BusinessHours{DayOfWeek: int(time.Sunday), IsOpen: false, OpenTime: "09:00", CloseTime: "17:00"})
	for day := time.Monday; day <= time.Friday; day++ {
		hours = append(hours, BusinessHours{
			DayOfWeek:  int(day),
			IsOpen:     true,
			OpenTime:   "09:00",
			CloseTime:  "18:00",
			LunchStart: ptr.Ptr(types.TimeString("12:00")),
			LunchEnd:   ptr.Ptr(types.TimeString("13:00")),
		})
	}
	hours = append(hours, BusinessHours{DayOfWeek: int(time.Saturday), IsOpen: true, OpenTime: "09:00", CloseTime: "13:00"})
	return hours
}

// Local returns t as wall-clock time of the business time zone (time.Local).
// Calendar days, weekdays and minutes of day are always read from it.
func Local(t time.Time) time.Time {
	return t.In(time.Local)
}

// SameDay returns true if both instants fall on the same local calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := Local(a).Date()
	y2, m2, d2 := Local(b).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns local midnight of the calendar day of t
func StartOfDay(t time.Time) time.Time {
	y, m, d := Local(t).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// MinuteOfDay returns minutes since local midnight
func MinuteOfDay(t time.Time) int {
	local := Local(t)
	return local.Hour()*60 + local.Minute()
}
