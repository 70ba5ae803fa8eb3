package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	monday   = time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2026, 10, 24, 0, 0, 0, 0, time.Local)
	sunday   = time.Date(2026, 10, 25, 0, 0, 0, 0, time.Local)
)

func newTestService(t *testing.T, specialDateLunch bool) (*Service, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logger.NewNop()
	return NewService(calendarRepo.NewRepository(store, log), specialDateLunch, log), store
}

func ts(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func TestService_DefaultWeek(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	open, err := svc.IsDateAvailable(ctx, sunday)
	require.NoError(t, err)
	assert.False(t, open)

	hours, ok, err := svc.GetHoursForDate(ctx, monday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("09:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), hours.CloseTime)
	require.True(t, hours.HasLunch())
	assert.Equal(t, types.TimeString("12:00"), *hours.LunchStart)

	hours, ok, err = svc.GetHoursForDate(ctx, saturday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("13:00"), hours.CloseTime)
	assert.False(t, hours.HasLunch())

	hours, ok, err = svc.GetHoursForDate(ctx, sunday)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, hours)
}

func TestService_UpdateBusinessHours(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, false)

	err := svc.UpdateBusinessHours(ctx, domain.BusinessHours{
		DayOfWeek: 0,
		IsOpen:    true,
		OpenTime:  "10:00",
		CloseTime: "14:00",
	})
	require.NoError(t, err)

	// Изменение сохраняется и видно новому экземпляру сервиса
	log := logger.NewNop()
	reloaded := NewService(calendarRepo.NewRepository(store, log), false, log)
	hours, ok, err := reloaded.GetHoursForDate(ctx, sunday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("14:00"), hours.CloseTime)
}

func TestService_UpdateBusinessHoursValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	tests := []struct {
		name string
		day  domain.BusinessHours
	}{
		{"bad day", domain.BusinessHours{DayOfWeek: 7, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"}},
		{"bad format", domain.BusinessHours{DayOfWeek: 1, IsOpen: true, OpenTime: "9am", CloseTime: "17:00"}},
		{"open after close", domain.BusinessHours{DayOfWeek: 1, IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}},
		{"half lunch", domain.BusinessHours{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00", LunchStart: ts("12:00")}},
		{"lunch outside", domain.BusinessHours{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00", LunchStart: ts("16:30"), LunchEnd: ts("17:30")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateBusinessHours(ctx, tt.day)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_SpecialDateOverridesWeekday(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	closed, err := svc.AddSpecialDate(ctx, domain.SpecialDateInput{Date: monday, IsOpen: false, Description: "Holiday"})
	require.NoError(t, err)
	assert.NotEmpty(t, closed.ID)

	open, err := svc.IsDateAvailable(ctx, monday.Add(15*time.Hour))
	require.NoError(t, err)
	assert.False(t, open)

	_, ok, err := svc.GetHoursForDate(ctx, monday)
	require.NoError(t, err)
	assert.False(t, ok)

	// Открытая особая дата в воскресенье без часов получает 09:00-17:00
	_, err = svc.AddSpecialDate(ctx, domain.SpecialDateInput{Date: sunday, IsOpen: true})
	require.NoError(t, err)

	hours, ok, err := svc.GetHoursForDate(ctx, sunday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("09:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("17:00"), hours.CloseTime)
}

func TestService_FirstSpecialDateWins(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	_, err := svc.AddSpecialDate(ctx, domain.SpecialDateInput{Date: monday, IsOpen: true, OpenTime: ts("11:00"), CloseTime: ts("15:00")})
	require.NoError(t, err)
	_, err = svc.AddSpecialDate(ctx, domain.SpecialDateInput{Date: monday, IsOpen: false})
	require.NoError(t, err)

	hours, ok, err := svc.GetHoursForDate(ctx, monday)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("11:00"), hours.OpenTime)
}

func TestService_SpecialDateLunchFlag(t *testing.T) {
	ctx := context.Background()
	input := domain.SpecialDateInput{
		Date:       sunday,
		IsOpen:     true,
		OpenTime:   ts("10:00"),
		CloseTime:  ts("16:00"),
		LunchStart: ts("12:00"),
		LunchEnd:   ts("12:30"),
	}

	svc, _ := newTestService(t, false)
	_, err := svc.AddSpecialDate(ctx, input)
	require.NoError(t, err)
	hours, _, err := svc.GetHoursForDate(ctx, sunday)
	require.NoError(t, err)
	assert.False(t, hours.HasLunch())

	withLunch, _ := newTestService(t, true)
	_, err = withLunch.AddSpecialDate(ctx, input)
	require.NoError(t, err)
	hours, _, err = withLunch.GetHoursForDate(ctx, sunday)
	require.NoError(t, err)
	assert.True(t, hours.HasLunch())
}

func TestService_UpdateAndDeleteSpecialDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	sd, err := svc.AddSpecialDate(ctx, domain.SpecialDateInput{Date: monday, IsOpen: false})
	require.NoError(t, err)

	updated, err := svc.UpdateSpecialDate(ctx, sd.ID, domain.SpecialDatePatch{
		IsOpen:      ptr.Ptr(true),
		Description: ptr.Ptr("Short day"),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsOpen)
	assert.Equal(t, "Short day", updated.Description)

	_, err = svc.UpdateSpecialDate(ctx, "missing", domain.SpecialDatePatch{})
	assert.ErrorIs(t, err, ErrSpecialDateNotFound)

	require.NoError(t, svc.DeleteSpecialDate(ctx, sd.ID))
	assert.ErrorIs(t, svc.DeleteSpecialDate(ctx, sd.ID), ErrSpecialDateNotFound)

	dates, err := svc.ListSpecialDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
