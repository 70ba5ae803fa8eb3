package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type stubService struct {
	appt      domain.Appointment
	cancelled bool
}

func (s *stubService) Get(_ context.Context, id string) (*domain.Appointment, error) {
	if s.appt.ID != id {
		return nil, appointments.ErrAppointmentNotFound
	}
	a := s.appt
	return &a, nil
}

func (s *stubService) Cancel(_ context.Context, id string) (*domain.Appointment, error) {
	if s.appt.ID != id {
		return nil, appointments.ErrAppointmentNotFound
	}
	if !s.appt.CanBeCancelled() {
		return nil, appointments.ErrCannotCancel
	}
	s.appt.Status = domain.StatusCancelled
	s.cancelled = true
	a := s.appt
	return &a, nil
}

func serve(h *Handler, id string, user *domain.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CancelByOwner(t *testing.T) {
	svc := &stubService{appt: domain.Appointment{
		ID:     "a-1",
		Client: domain.Client{Email: "ann@example.com"},
		Status: domain.StatusScheduled,
	}}
	h := NewHandler(svc, logger.NewNop())
	owner := &domain.User{ID: "u-1", Email: "ann@example.com", Role: domain.RoleClient}

	rec := serve(h, "a-1", owner)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.cancelled)

	// Повторная отмена запрещена
	rec = serve(h, "a-1", owner)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_CancelForbidden(t *testing.T) {
	svc := &stubService{appt: domain.Appointment{
		ID:     "a-1",
		Client: domain.Client{Email: "ann@example.com"},
		Status: domain.StatusScheduled,
	}}
	h := NewHandler(svc, logger.NewNop())
	stranger := &domain.User{ID: "u-2", Email: "bob@example.com", Role: domain.RoleClient}

	rec := serve(h, "a-1", stranger)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, svc.cancelled)
}
