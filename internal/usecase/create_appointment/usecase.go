package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// Options настройки создания записи
type Options struct {
	StepMinutes        int  // Шаг сетки слотов
	RevalidateOnCreate bool // Проверять пересечения с другими записями под блокировкой журнала
	ExcludePastSlots   bool // Запрещать запись на прошедшее время
}

// UseCase use case для создания записи
type UseCase struct {
	catalog      ServiceCatalog
	calendar     CalendarService
	ledger       Ledger
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	calendar CalendarService,
	ledger Ledger,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.StepMinutes <= 0 {
		opts.StepMinutes = domain.DefaultSlotStepMinutes
	}

	return &UseCase{
		catalog:      catalog,
		calendar:     calendar,
		ledger:       ledger,
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

// Execute выполняет use case создания записи
// Доступность слота перепроверяется внутри журнала, чтобы исключить двойную запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, client=%s, date=%s, time=%s",
		req.ServiceID, req.Client.Email, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalog.Get(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем часы работы на дату
	date := domain.StartOfDay(req.Date)
	hours, open, err := uc.calendar.GetHoursForDate(ctx, date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get hours: %v", ErrInternal, err)
	}
	if !open || hours == nil {
		uc.logger.Warn("CreateAppointment: closed on %s", date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	// 4. Проверяем, что время лежит на сетке и слот помещается в рабочий день
	start, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule, err := domain.NewDaySchedule(*hours, nil)
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid hours for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: invalid hours: %v", ErrInternal, err)
	}

	if !schedule.IsTick(start, uc.opts.StepMinutes) {
		uc.logger.Warn("CreateAppointment: time %s is not on the slot grid", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	if !schedule.IsAvailable(start, service.DurationMinutes) {
		uc.logger.Warn("CreateAppointment: slot %s overlaps lunch or closing time", req.StartTime)
		return nil, ErrSlotNotAvailable
	}

	startAt, err := req.StartTime.On(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if uc.opts.ExcludePastSlots && startAt.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateAppointment: slot %s is in the past", startAt.Format(domain.DateFormat+" "+domain.TimeFormat))
		return nil, ErrSlotNotAvailable
	}

	// 5. Создаем запись, проверяя пересечения под блокировкой журнала
	var validate appointments.ValidateFunc
	if uc.opts.RevalidateOnCreate {
		validate = func(sameDay []domain.Appointment) error {
			current, err := domain.NewDaySchedule(*hours, sameDay)
			if err != nil {
				return fmt.Errorf("%w: invalid hours: %v", ErrInternal, err)
			}
			if !current.IsAvailable(start, service.DurationMinutes) {
				return ErrSlotNotAvailable
			}
			return nil
		}
	}

	input := domain.AppointmentInput{
		Service: *service,
		Client:  req.Client,
		Date:    startAt,
		Notes:   req.Notes,
	}

	appt, err := uc.ledger.Book(ctx, input, validate)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateAppointment: slot %s already taken", req.StartTime)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, appointments.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, ErrInternal):
			return nil, err
		}
		uc.logger.Error("CreateAppointment: failed to book: %v", err)
		return nil, fmt.Errorf("%w: failed to book: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", appt.ID)

	return newResponse(appt), nil
}
