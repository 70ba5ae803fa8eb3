package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// Options настройки изменения записи
type Options struct {
	StepMinutes      int  // Шаг сетки слотов
	ExcludePastSlots bool // Запрещать перенос на прошедшее время
}

// UseCase use case для изменения записи администратором
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

// Execute применяет изменения к записи
// При смене даты или услуги слот проверяется по расписанию дня под блокировкой журнала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("UpdateAppointment: appointment id=%s", req.AppointmentID)

	patch := req.Patch
	if patch.Date != nil {
		date := domain.Local(*patch.Date)
		patch.Date = &date
	}

	// 1. Снимок услуги берём из каталога на момент изменения
	if req.ServiceID != nil {
		service, err := uc.catalog.Get(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogService.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		patch.Service = service
	}

	// 2. Применяем изменения, перепроверяя слот под блокировкой журнала
	var validate appointments.RescheduleFunc
	if patch.Date != nil || patch.Service != nil {
		validate = func(updated domain.Appointment, sameDay []domain.Appointment) error {
			return uc.checkSlot(ctx, updated, sameDay)
		}
	}

	appt, err := uc.ledger.UpdateChecked(ctx, req.AppointmentID, patch, validate)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessClosed),
			errors.Is(err, ErrInvalidTimeSlot),
			errors.Is(err, ErrSlotNotAvailable),
			errors.Is(err, ErrInternal):
			return nil, err
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointments.ErrInvalidStatus):
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		case errors.Is(err, appointments.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to update: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s", appt.ID)

	return appt, nil
}

// checkSlot проверяет, что изменённая запись помещается в расписание своего дня
// Отменённая запись слот не занимает и не проверяется
func (uc *UseCase) checkSlot(ctx context.Context, updated domain.Appointment, sameDay []domain.Appointment) error {
	if !updated.OccupiesSlot() {
		return nil
	}

	date := domain.StartOfDay(updated.Date)
	hours, open, err := uc.calendar.GetHoursForDate(ctx, date)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get hours: %v", err)
		return fmt.Errorf("%w: failed to get hours: %v", ErrInternal, err)
	}
	if !open || hours == nil {
		uc.logger.Warn("UpdateAppointment: closed on %s", date.Format(domain.DateFormat))
		return ErrBusinessClosed
	}

	schedule, err := domain.NewDaySchedule(*hours, sameDay)
	if err != nil {
		uc.logger.Error("UpdateAppointment: invalid hours for %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: invalid hours: %v", ErrInternal, err)
	}

	local := domain.Local(updated.Date)
	start := domain.MinuteOfDay(local)
	if local.Second() != 0 || local.Nanosecond() != 0 || !schedule.IsTick(start, uc.opts.StepMinutes) {
		uc.logger.Warn("UpdateAppointment: time %s is not on the slot grid", local.Format(domain.TimeFormat))
		return ErrInvalidTimeSlot
	}

	if !schedule.IsAvailable(start, updated.Service.DurationMinutes) {
		uc.logger.Warn("UpdateAppointment: slot %s is not available", local.Format(domain.TimeFormat))
		return ErrSlotNotAvailable
	}

	if uc.opts.ExcludePastSlots && local.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("UpdateAppointment: slot %s is in the past", local.Format(time.RFC3339))
		return ErrSlotNotAvailable
	}

	return nil
}
