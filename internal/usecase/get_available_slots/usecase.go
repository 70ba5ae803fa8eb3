package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// Options настройки генерации слотов
type Options struct {
	StepMinutes      int  // Шаг сетки слотов
	ExcludePastSlots bool // Помечать прошедшие слоты сегодняшнего дня недоступными
}

// UseCase use case получения слотов на дату
type UseCase struct {
	calendar     CalendarService
	appointments AppointmentLister
	catalog      ServiceCatalog
	metrics      Metrics
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	calendar CalendarService,
	appointments AppointmentLister,
	catalog ServiceCatalog,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.StepMinutes <= 0 {
		opts.StepMinutes = domain.DefaultSlotStepMinutes
	}

	return &UseCase{
		calendar:     calendar,
		appointments: appointments,
		catalog:      catalog,
		metrics:      metrics,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.ServiceID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность
	duration, err := uc.ResolveDuration(ctx, req.ServiceID, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	date := domain.StartOfDay(req.Date)
	slots, err := uc.SlotsForDate(ctx, date, duration)
	if err != nil {
		return nil, err
	}

	return &Response{Date: date, Slots: slots}, nil
}

// ResolveDuration возвращает длительность записи из запроса или из услуги каталога
func (uc *UseCase) ResolveDuration(ctx context.Context, serviceID string, durationMinutes int) (int, error) {
	if durationMinutes > 0 {
		return durationMinutes, nil
	}

	service, err := uc.catalog.Get(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", serviceID)
			return 0, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", serviceID, err)
		return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return service.DurationMinutes, nil
}

// SlotsForDate генерирует слоты на календарный день для записи длительностью durationMinutes
// Для закрытого дня возвращает пустой список
func (uc *UseCase) SlotsForDate(ctx context.Context, date time.Time, durationMinutes int) ([]domain.TimeSlot, error) {
	// 1. Часы работы на дату
	hours, open, err := uc.calendar.GetHoursForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get hours for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get hours: %v", ErrInternal, err)
	}
	if !open || hours == nil {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		return []domain.TimeSlot{}, nil
	}

	// 2. Активные записи этого дня
	appointments, err := uc.appointments.ListForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Граница прошедших слотов
	cutoff := -1
	if uc.opts.ExcludePastSlots {
		cutoff = pastCutoff(date, uc.timeProvider.Now())
	}

	// 4. Генерация сетки
	slots, err := generateSlots(*hours, appointments, durationMinutes, uc.opts.StepMinutes, cutoff)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	available := countAvailable(slots)
	if uc.metrics != nil {
		uc.metrics.ObserveSlots(len(slots), available)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for %s",
		len(slots), available, date.Format(domain.DateFormat))

	return slots, nil
}
