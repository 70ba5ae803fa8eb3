package appointment

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

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, logger.NewNop())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	date := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	notes := "first visit"
	saved := []domain.Appointment{{
		ID:      "a-1",
		Service: domain.DefaultServices()[1],
		Client:  domain.Client{ID: "c-1", Name: "Ann", Email: "ann@example.com"},
		Date:    date,
		Status:  domain.StatusScheduled,
		Notes:   &notes,
	}}
	require.NoError(t, repo.SaveAll(ctx, saved))

	// Новый репозиторий поверх того же хранилища видит те же данные
	reloaded, err := NewRepository(store, logger.NewNop()).List(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "a-1", reloaded[0].ID)
	assert.True(t, reloaded[0].Date.Equal(date))
	assert.Equal(t, 60, reloaded[0].Service.DurationMinutes)
	assert.Equal(t, domain.StatusScheduled, reloaded[0].Status)
	require.NotNil(t, reloaded[0].Notes)
	assert.Equal(t, notes, *reloaded[0].Notes)
}

func TestRepository_CorruptedCollection(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, domain.KeyAppointments, "not-json"))

	list, err := NewRepository(store, logger.NewNop()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
