package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type stubUseCase struct {
	err error
	got *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		Date: req.Date,
		Slots: []domain.TimeSlot{
			{Time: "09:00", Available: true},
			{Time: "09:30", Available: false},
		},
	}, nil
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{}
	rec := get(NewHandler(uc, logger.NewNop()), "/api/v1/available-slots?date=2026-10-19&durationMinutes=60")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60, uc.got.DurationMinutes)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, []Slot{{Time: "09:00", Available: true}, {Time: "09:30", Available: false}}, resp.Slots)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-slots?serviceId=service-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-slots?date=2026-10-19").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-slots?date=19-10-2026&serviceId=service-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/available-slots?date=2026-10-19&durationMinutes=abc").Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	rec := get(NewHandler(&stubUseCase{err: getAvailableSlots.ErrServiceNotFound}, logger.NewNop()),
		"/api/v1/available-slots?date=2026-10-19&serviceId=missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(NewHandler(&stubUseCase{err: getAvailableSlots.ErrInternal}, logger.NewNop()),
		"/api/v1/available-slots?date=2026-10-19&serviceId=service-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
