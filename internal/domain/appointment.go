package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo returns true if the status may change to next.
// Only scheduled appointments move, and only to completed or cancelled.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	return s == StatusScheduled && (next == StatusCompleted || next == StatusCancelled)
}

// Client is the person who booked an appointment. Created ad hoc at booking time.
type Client struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// HasPhone returns true if the client left a phone number
func (c Client) HasPhone() bool {
	return c.Phone != nil && *c.Phone != ""
}

// Appointment represents a booked time slot.
// Service and Client are snapshots taken at booking time.
type Appointment struct {
	ID      string            `json:"id"`
	Service Service           `json:"service"`
	Client  Client            `json:"client"`
	Date    time.Time         `json:"date"`
	Status  AppointmentStatus `json:"status"`
	Notes   *string           `json:"notes,omitempty"`
}

// End returns the instant the appointment ends
func (a *Appointment) End() time.Time {
	return a.Date.Add(time.Duration(a.Service.DurationMinutes) * time.Minute)
}

// OccupiesSlot returns true if the appointment blocks slots (everything except cancelled)
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// IsOnDay returns true if the appointment starts on the same local calendar day as date
func (a *Appointment) IsOnDay(date time.Time) bool {
	return SameDay(a.Date, date)
}

// AppointmentInput is the data needed to create an appointment
type AppointmentInput struct {
	Service Service
	Client  Client
	Date    time.Time
	Notes   *string
}

// AppointmentPatch holds the fields that may change on an existing appointment.
// Nil fields are left untouched.
type AppointmentPatch struct {
	Service *Service
	Client  *Client
	Date    *time.Time
	Notes   *string
	Status  *AppointmentStatus
}

// ApplyTo copies the non-nil fields onto the appointment. Date is stored in local time.
func (p AppointmentPatch) ApplyTo(a *Appointment) {
	if p.Service != nil {
		a.Service = *p.Service
	}
	if p.Client != nil {
		a.Client = *p.Client
	}
	if p.Date != nil {
		a.Date = Local(*p.Date)
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}
