package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
)

// Repository репозиторий каталога услуг (ключ services)
type Repository struct {
	store  kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// List возвращает каталог услуг
// При первом чтении каталог заполняется услугами по умолчанию и сохраняется
func (r *Repository) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyServices, &services)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("List: stored services are corrupted, using defaults: %v", err)
			return domain.DefaultServices(), nil
		}
		return nil, fmt.Errorf("%w: List: %v", ErrLoad, err)
	}

	if !found {
		services = domain.DefaultServices()
		if err := r.SaveAll(ctx, services); err != nil {
			return nil, err
		}
		r.logger.Info("List: seeded %d default services", len(services))
		return services, nil
	}

	if services == nil {
		return []domain.Service{}, nil
	}
	return services, nil
}

// SaveAll перезаписывает каталог целиком
func (r *Repository) SaveAll(ctx context.Context, services []domain.Service) error {
	if services == nil {
		services = []domain.Service{}
	}
	if err := kv.SaveJSON(ctx, r.store, domain.KeyServices, services); err != nil {
		return fmt.Errorf("%w: SaveAll: %v", ErrSave, err)
	}
	return nil
}
