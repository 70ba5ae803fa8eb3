package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestRepository_Users(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewMemoryStore(), logger.NewNop())

	users, found, err := repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, users)

	require.NoError(t, repo.SaveAll(ctx, []domain.User{{ID: "u-1", Email: "a@b.c", Role: domain.RoleClient}}))

	users, found, err = repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, users, 1)
	assert.Equal(t, "u-1", users[0].ID)
}

func TestRepository_SessionStripsPassword(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewRepository(store, logger.NewNop())

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, repo.SaveSession(ctx, domain.User{ID: "admin-1", PasswordHash: "secret-hash", Role: domain.RoleAdmin}))

	raw, err := store.Get(ctx, domain.KeyAuthUser)
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret-hash")

	session, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", session.ID)
	assert.Empty(t, session.PasswordHash)

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}
