package get_available_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_dates"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type stubUseCase struct {
	err error
}

func (s *stubUseCase) Execute(_ context.Context, _ *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableDates.Response{Dates: []domain.DateWithSlots{
		{
			Date:  time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local),
			Slots: []domain.TimeSlot{{Time: "09:00", Available: true}, {Time: "09:30", Available: false}},
		},
	}}, nil
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := get(NewHandler(&stubUseCase{}, logger.NewNop()), "/api/v1/available-dates?serviceId=service-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableDatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2026-10-15", resp.Dates[0].Date)
	assert.Equal(t, 1, resp.Dates[0].AvailableCount)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-dates").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-dates?durationMinutes=-1").Code)

	h = NewHandler(&stubUseCase{err: getAvailableSlots.ErrServiceNotFound}, logger.NewNop())
	assert.Equal(t, http.StatusNotFound, get(h, "/api/v1/available-dates?serviceId=missing").Code)
}
