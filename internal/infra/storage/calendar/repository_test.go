package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestRepository_DefaultBusinessHours(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), logger.NewNop())

	hours, err := repo.GetBusinessHours(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 7)

	assert.False(t, hours[0].IsOpen)
	assert.True(t, hours[1].IsOpen)
	assert.True(t, hours[1].HasLunch())
	assert.Equal(t, "18:00", hours[5].CloseTime.String())
	assert.Equal(t, "13:00", hours[6].CloseTime.String())
	assert.False(t, hours[6].HasLunch())
}

func TestRepository_BusinessHoursRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, logger.NewNop())

	hours := domain.DefaultBusinessHours()
	hours[0].IsOpen = true
	// Сохраняем в обратном порядке, чтение должно упорядочить по дню недели
	reversed := make([]domain.BusinessHours, 0, len(hours))
	for i := len(hours) - 1; i >= 0; i-- {
		reversed = append(reversed, hours[i])
	}
	require.NoError(t, repo.SaveBusinessHours(ctx, reversed))

	got, err := repo.GetBusinessHours(ctx)
	require.NoError(t, err)
	require.Len(t, got, 7)
	for i, h := range got {
		assert.Equal(t, i, h.DayOfWeek)
	}
	assert.True(t, got[0].IsOpen)
}

func TestRepository_SpecialDates(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, logger.NewNop())

	dates, err := repo.GetSpecialDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)

	saved := []domain.SpecialDate{{
		ID:          "sd-1",
		Date:        time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
		IsOpen:      false,
		Description: "Christmas",
	}}
	require.NoError(t, repo.SaveSpecialDates(ctx, saved))

	dates, err = repo.GetSpecialDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "Christmas", dates[0].Description)

	require.NoError(t, store.Set(ctx, domain.KeySpecialDates, "[{"))
	dates, err = repo.GetSpecialDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestRepository_PartialBusinessHoursCompletedFromDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), logger.NewNop())

	stored := []domain.BusinessHours{
		{DayOfWeek: 3, IsOpen: false, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 1, IsOpen: true, OpenTime: "10:00", CloseTime: "16:00"},
		{DayOfWeek: 1, IsOpen: false, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 9, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
	}
	require.NoError(t, repo.SaveBusinessHours(ctx, stored))

	got, err := repo.GetBusinessHours(ctx)
	require.NoError(t, err)
	require.Len(t, got, 7)
	for i, h := range got {
		assert.Equal(t, i, h.DayOfWeek)
	}

	// Сохранённые дни берутся из хранилища, первая запись дня побеждает
	assert.True(t, got[1].IsOpen)
	assert.Equal(t, "10:00", got[1].OpenTime.String())
	assert.False(t, got[3].IsOpen)

	// Недостающие дни берутся из шаблона по умолчанию
	defaults := domain.DefaultBusinessHours()
	assert.Equal(t, defaults[0], got[0])
	assert.Equal(t, defaults[2], got[2])
	assert.Equal(t, defaults[6], got[6])
}
