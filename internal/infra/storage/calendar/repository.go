package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
)

// Repository репозиторий рабочего календаря
// Недельный шаблон хранится под ключом business_hours, особые даты под special_dates
type Repository struct {
	store  kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// GetBusinessHours возвращает недельный шаблон, упорядоченный по дню недели
// Если шаблона нет или он повреждён, возвращается шаблон по умолчанию
func (r *Repository) GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error) {
	var hours []domain.BusinessHours

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyBusinessHours, &hours)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("GetBusinessHours: stored business hours are corrupted, using defaults: %v", err)
			return domain.DefaultBusinessHours(), nil
		}
		return nil, fmt.Errorf("%w: GetBusinessHours: %v", ErrLoad, err)
	}
	if !found || len(hours) == 0 {
		return domain.DefaultBusinessHours(), nil
	}

	return completeWeek(hours, r.logger), nil
}

// completeWeek оставляет по одной записи на день недели и добавляет недостающие дни из шаблона по умолчанию
func completeWeek(stored []domain.BusinessHours, logger Logger) []domain.BusinessHours {
	week := make([]*domain.BusinessHours, domain.DaysInWeek)
	for i := range stored {
		day := stored[i].DayOfWeek
		if day < 0 || day >= domain.DaysInWeek || week[day] != nil {
			logger.Warn("GetBusinessHours: skipping unexpected record for day %d", day)
			continue
		}
		week[day] = &stored[i]
	}

	hours := make([]domain.BusinessHours, 0, domain.DaysInWeek)
	for _, fallback := range domain.DefaultBusinessHours() {
		if h := week[fallback.DayOfWeek]; h != nil {
			hours = append(hours, *h)
			continue
		}
		logger.Warn("GetBusinessHours: day %d is missing, using default hours", fallback.DayOfWeek)
		hours = append(hours, fallback)
	}
	return hours
}

// SaveBusinessHours перезаписывает недельный шаблон целиком
func (r *Repository) SaveBusinessHours(ctx context.Context, hours []domain.BusinessHours) error {
	if err := kv.SaveJSON(ctx, r.store, domain.KeyBusinessHours, hours); err != nil {
		return fmt.Errorf("%w: SaveBusinessHours: %v", ErrSave, err)
	}
	return nil
}

// GetSpecialDates возвращает особые даты в порядке хранения
func (r *Repository) GetSpecialDates(ctx context.Context) ([]domain.SpecialDate, error) {
	var dates []domain.SpecialDate

	found, err := kv.LoadJSON(ctx, r.store, domain.KeySpecialDates, &dates)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("GetSpecialDates: stored special dates are corrupted, treating as empty: %v", err)
			return []domain.SpecialDate{}, nil
		}
		return nil, fmt.Errorf("%w: GetSpecialDates: %v", ErrLoad, err)
	}
	if !found || dates == nil {
		return []domain.SpecialDate{}, nil
	}

	return dates, nil
}

// SaveSpecialDates перезаписывает список особых дат целиком
func (r *Repository) SaveSpecialDates(ctx context.Context, dates []domain.SpecialDate) error {
	if dates == nil {
		dates = []domain.SpecialDate{}
	}
	if err := kv.SaveJSON(ctx, r.store, domain.KeySpecialDates, dates); err != nil {
		return fmt.Errorf("%w: SaveSpecialDates: %v", ErrSave, err)
	}
	return nil
}
