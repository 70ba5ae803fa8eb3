package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type stubCalendar struct {
	hours *domain.DayHours
	err   error
}

func (c *stubCalendar) GetHoursForDate(_ context.Context, _ time.Time) (*domain.DayHours, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	return c.hours, c.hours != nil, nil
}

type stubLedger struct {
	appointments []domain.Appointment
}

func (l *stubLedger) ListForDate(_ context.Context, _ time.Time) ([]domain.Appointment, error) {
	return l.appointments, nil
}

type stubCatalog struct {
	services map[string]domain.Service
}

func (c *stubCatalog) Get(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := c.services[id]
	if !ok {
		return nil, catalogService.ErrServiceNotFound
	}
	return &svc, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)

func ts(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func nineToFive() *domain.DayHours {
	return &domain.DayHours{OpenTime: "09:00", CloseTime: "17:00"}
}

func booked(hour, minute, duration int, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:      "a",
		Service: domain.Service{ID: "s", DurationMinutes: duration},
		Date:    monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
		Status:  status,
	}
}

func newUseCase(hours *domain.DayHours, appointments []domain.Appointment, opts Options) *UseCase {
	catalog := &stubCatalog{services: map[string]domain.Service{
		"service-2": {ID: "service-2", Name: "Strategy Session", DurationMinutes: 60},
	}}
	return NewUseCase(&stubCalendar{hours: hours}, &stubLedger{appointments: appointments}, catalog, nil, opts, logger.NewNop())
}

func slotMap(slots []domain.TimeSlot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time.String()] = s.Available
	}
	return m
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	uc := newUseCase(nil, nil, Options{})

	for _, duration := range []int{5, 30, 60, 480} {
		resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: duration})
		require.NoError(t, err)
		assert.NotNil(t, resp.Slots)
		assert.Empty(t, resp.Slots)
	}
}

func TestExecute_GridCoverage(t *testing.T) {
	uc := newUseCase(nineToFive(), nil, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[15].Time)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestExecute_SlotRunningPastClose(t *testing.T) {
	uc := newUseCase(nineToFive(), nil, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 60})
	require.NoError(t, err)

	// Сетка не зависит от длительности, последний слот не помещается до закрытия
	require.Len(t, resp.Slots, 16)
	slots := slotMap(resp.Slots)
	assert.True(t, slots["16:00"])
	assert.False(t, slots["16:30"])
}

func TestExecute_LunchExclusion(t *testing.T) {
	hours := nineToFive()
	hours.LunchStart = ts("12:00")
	hours.LunchEnd = ts("13:00")
	uc := newUseCase(hours, nil, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		switch s.Time {
		case "12:00", "12:30":
			assert.False(t, s.Available, s.Time)
		default:
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestExecute_OverlapExclusion(t *testing.T) {
	appointments := []domain.Appointment{booked(10, 0, 60, domain.StatusScheduled)}
	uc := newUseCase(nineToFive(), appointments, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, ServiceID: "service-2"})
	require.NoError(t, err)

	slots := slotMap(resp.Slots)
	assert.True(t, slots["09:00"])
	assert.False(t, slots["09:30"])
	assert.False(t, slots["10:00"])
	assert.False(t, slots["10:30"])
	assert.True(t, slots["11:00"])
}

func TestExecute_CancelledAppointmentsDoNotBlock(t *testing.T) {
	appointments := []domain.Appointment{booked(10, 0, 60, domain.StatusCancelled)}
	uc := newUseCase(nineToFive(), appointments, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 60})
	require.NoError(t, err)
	assert.True(t, slotMap(resp.Slots)["10:00"])
}

func TestExecute_OwnMinuteAlignment(t *testing.T) {
	uc := newUseCase(&domain.DayHours{OpenTime: "09:15", CloseTime: "11:00"}, nil, Options{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	times := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		times = append(times, s.Time)
	}
	assert.Equal(t, []types.TimeString{"09:15", "09:45", "10:15", "10:45"}, times)
	assert.False(t, resp.Slots[3].Available)
}

func TestExecute_ExcludePastSlots(t *testing.T) {
	now := monday.Add(10*time.Hour + 10*time.Minute)

	uc := newUseCase(nineToFive(), nil, Options{ExcludePastSlots: true}).WithTimeProvider(fixedTime{now: now})
	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	slots := slotMap(resp.Slots)
	assert.Len(t, resp.Slots, 16)
	assert.False(t, slots["09:00"])
	assert.False(t, slots["10:00"])
	assert.True(t, slots["10:30"])

	// По умолчанию прошедшие слоты остаются доступными
	uc = newUseCase(nineToFive(), nil, Options{}).WithTimeProvider(fixedTime{now: now})
	resp, err = uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)
	assert.True(t, slotMap(resp.Slots)["09:00"])
}

func TestExecute_CustomStep(t *testing.T) {
	uc := newUseCase(nineToFive(), nil, Options{StepMinutes: 60})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 60})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 8)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(nineToFive(), nil, Options{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: monday, DurationMinutes: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: monday, ServiceID: "missing"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CalendarFailure(t *testing.T) {
	uc := NewUseCase(&stubCalendar{err: errors.New("storage down")}, &stubLedger{}, &stubCatalog{}, nil, Options{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInternal)
}
