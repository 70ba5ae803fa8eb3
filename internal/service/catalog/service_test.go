package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func newTestService() *Service {
	log := logger.NewNop()
	return NewService(catalogRepo.NewRepository(kv.NewMemoryStore(), log), log)
}

func TestService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	services, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)

	created, err := svc.Add(ctx, domain.ServiceInput{Name: " Follow-up ", DurationMinutes: 45, Price: 80})
	require.NoError(t, err)
	assert.Equal(t, "Follow-up", created.Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.DurationMinutes)

	updated, err := svc.Update(ctx, created.ID, domain.ServicePatch{Price: ptr.Ptr(90.0)})
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.Price)
	assert.Equal(t, 45, updated.DurationMinutes)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrServiceNotFound)
}

func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tests := []struct {
		name  string
		input domain.ServiceInput
	}{
		{"empty name", domain.ServiceInput{Name: "  ", DurationMinutes: 30}},
		{"too short", domain.ServiceInput{Name: "x", DurationMinutes: 4}},
		{"too long", domain.ServiceInput{Name: "x", DurationMinutes: 481}},
		{"negative price", domain.ServiceInput{Name: "x", DurationMinutes: 30, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.Update(ctx, "service-1", domain.ServicePatch{DurationMinutes: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
