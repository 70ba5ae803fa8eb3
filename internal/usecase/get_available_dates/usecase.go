package get_available_dates

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// UseCase use case построения горизонта доступности
type UseCase struct {
	calendar     CalendarService
	slots        SlotGenerator
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarService, slots SlotGenerator, horizonDays int, logger Logger) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}

	return &UseCase{
		calendar:     calendar,
		slots:        slots,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения горизонта
// Закрытые дни пропускаются, для каждого открытого дня генерируются слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: service=%s, duration=%d, horizon=%d",
		req.ServiceID, req.DurationMinutes, uc.horizonDays)

	// 1. Валидация входных данных
	if err := get_available_slots.ValidateDuration(req.ServiceID, req.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Определяем длительность один раз на весь горизонт
	duration, err := uc.slots.ResolveDuration(ctx, req.ServiceID, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	// 3. Обходим дни, начиная с сегодняшней полуночи
	today := domain.StartOfDay(uc.timeProvider.Now())
	dates := make([]domain.DateWithSlots, 0, uc.horizonDays)

	for i := 0; i < uc.horizonDays; i++ {
		date := today.AddDate(0, 0, i)

		open, err := uc.calendar.IsDateAvailable(ctx, date)
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to check %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to check date: %v", ErrInternal, err)
		}
		if !open {
			continue
		}

		slots, err := uc.slots.SlotsForDate(ctx, date, duration)
		if err != nil {
			return nil, err
		}

		dates = append(dates, domain.DateWithSlots{Date: date, Slots: slots})
	}

	uc.logger.Info("GetAvailableDates: %d open dates from %s", len(dates), today.Format(domain.DateFormat))

	return &Response{Dates: dates}, nil
}
