package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID   string  `json:"serviceId"`
	Date        string  `json:"date"`      // "2026-10-19"
	StartTime   string  `json:"startTime"` // "10:00"
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string        `json:"id"`
	ServiceID       string        `json:"serviceId"`
	ServiceName     string        `json:"serviceName"`
	DurationMinutes int           `json:"durationMinutes"`
	Price           float64       `json:"price"`
	Client          domain.Client `json:"client"`
	Date            string        `json:"date"`
	Status          string        `json:"status"`
	Notes           *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createAppointment.Request{
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Client: domain.Client{
			Name:  r.ClientName,
			Email: r.ClientEmail,
			Phone: r.ClientPhone,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Client:          resp.Client,
		Date:            resp.Date.Format(time.RFC3339),
		Status:          string(resp.Status),
		Notes:           resp.Notes,
	}
}
