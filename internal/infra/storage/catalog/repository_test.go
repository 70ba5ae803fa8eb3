package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestRepository_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, logger.NewNop())

	services, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Initial Consultation", services[0].Name)

	raw, err := store.Get(ctx, domain.KeyServices)
	require.NoError(t, err)
	assert.Contains(t, raw, `"duration":30`)
}

func TestRepository_EmptyCatalogIsKept(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), logger.NewNop())

	require.NoError(t, repo.SaveAll(ctx, nil))

	services, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)
}
