package update_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type stubCalendar struct {
	got *domain.BusinessHours
	err error
}

func (s *stubCalendar) UpdateBusinessHours(_ context.Context, day domain.BusinessHours) error {
	s.got = &day
	return s.err
}

func serve(h *Handler, day, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/business-hours/"+day, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"dayOfWeek": day})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Update(t *testing.T) {
	cal := &stubCalendar{}
	h := NewHandler(cal, logger.NewNop())

	rec := serve(h, "6", `{"isOpen":true,"openTime":"10:00","closeTime":"14:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, cal.got)
	assert.Equal(t, 6, cal.got.DayOfWeek)
	assert.True(t, cal.got.IsOpen)
	assert.Equal(t, "14:00", cal.got.CloseTime.String())
	assert.False(t, cal.got.HasLunch())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		day  string
		body string
		err  error
		want int
	}{
		{"day out of range", "7", `{"isOpen":false}`, nil, http.StatusBadRequest},
		{"day not a number", "mon", `{"isOpen":false}`, nil, http.StatusBadRequest},
		{"bad body", "1", `{`, nil, http.StatusBadRequest},
		{"invalid hours", "1", `{"isOpen":true,"openTime":"18:00","closeTime":"09:00"}`, calendar.ErrInvalidInput, http.StatusBadRequest},
		{"storage failure", "1", `{"isOpen":false}`, calendar.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubCalendar{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.want, serve(h, tt.day, tt.body).Code)
		})
	}
}
