package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
)

// Repository репозиторий записей на приём
// Коллекция хранится целиком под ключом appointments
type Repository struct {
	store  kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// List возвращает все записи в порядке хранения
// Повреждённая коллекция логируется и считается пустой
func (r *Repository) List(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyAppointments, &appointments)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("List: stored appointments are corrupted, treating as empty: %v", err)
			return []domain.Appointment{}, nil
		}
		return nil, fmt.Errorf("%w: List: %v", ErrLoad, err)
	}
	if !found || appointments == nil {
		return []domain.Appointment{}, nil
	}

	return appointments, nil
}

// SaveAll перезаписывает коллекцию записей целиком
func (r *Repository) SaveAll(ctx context.Context, appointments []domain.Appointment) error {
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	if err := kv.SaveJSON(ctx, r.store, domain.KeyAppointments, appointments); err != nil {
		return fmt.Errorf("%w: SaveAll: %v", ErrSave, err)
	}
	return nil
}
