package appointments

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Операции для метрик
const (
	opCreate   = "create"
	opUpdate   = "update"
	opCancel   = "cancel"
	opDelete   = "delete"
	opReminder = "reminder"
)

// Service журнал записей на приём
// Все изменения коллекции выполняются под одной блокировкой, уведомления отправляются асинхронно
type Service struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	repo     AppointmentRepository
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр журнала записей
// metrics может быть nil
func NewService(repo AppointmentRepository, notifier Notifier, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Add создает запись со статусом scheduled и отправляет подтверждение
func (s *Service) Add(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error) {
	return s.Book(ctx, input, nil)
}

// Book создает запись, предварительно вызвав validate под блокировкой журнала
// validate получает активные записи того же календарного дня
func (s *Service) Book(ctx context.Context, input domain.AppointmentInput, validate ValidateFunc) (*domain.Appointment, error) {
	s.logger.Info("Book: service=%s, client=%s, date=%s", input.Service.ID, input.Client.Email, input.Date.Format(time.RFC3339))

	appt, err := s.book(ctx, input, validate)
	s.observe(opCreate, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Book: successfully created appointment id=%s", appt.ID)
	s.dispatch(ctx, domain.NotificationConfirmation, *appt)
	return appt, nil
}

func (s *Service) book(ctx context.Context, input domain.AppointmentInput, validate ValidateFunc) (*domain.Appointment, error) {
	if err := validateInput(input); err != nil {
		s.logger.Warn("Book: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx, "Book")
	if err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(activeOnDay(all, input.Date)); err != nil {
			s.logger.Warn("Book: rejected by validation: %v", err)
			return nil, err
		}
	}

	client := input.Client
	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	appt := domain.Appointment{
		ID:      uuid.NewString(),
		Service: input.Service,
		Client:  client,
		Date:    domain.Local(input.Date),
		Status:  domain.StatusScheduled,
		Notes:   input.Notes,
	}

	all = append(all, appt)
	if err := s.save(ctx, "Book", all); err != nil {
		return nil, err
	}

	return &appt, nil
}

// Update применяет изменения к записи без проверки расписания
func (s *Service) Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	return s.UpdateChecked(ctx, id, patch, nil)
}

// UpdateChecked применяет изменения к записи, вызывая validate под блокировкой журнала
// Перевод в cancelled отправляет уведомление об отмене, остальные изменения повторное подтверждение
func (s *Service) UpdateChecked(ctx context.Context, id string, patch domain.AppointmentPatch, validate RescheduleFunc) (*domain.Appointment, error) {
	s.logger.Info("Update: appointment id=%s", id)

	appt, err := s.mutate(ctx, "Update", id, func(a *domain.Appointment, others []domain.Appointment) error {
		if patch.Status != nil {
			if !patch.Status.IsValid() || !a.Status.CanTransitionTo(*patch.Status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, a.Status, *patch.Status)
			}
		}
		if patch.Service != nil && patch.Service.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
		}
		if patch.Date != nil && patch.Date.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		patch.ApplyTo(a)
		if validate != nil {
			return validate(*a, activeOnDay(others, a.Date))
		}
		return nil
	})
	s.observe(opUpdate, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)
	kind := domain.NotificationConfirmation
	if patch.Status != nil && *patch.Status == domain.StatusCancelled {
		kind = domain.NotificationCancellation
	}
	s.dispatch(ctx, kind, *appt)
	return appt, nil
}

// Cancel переводит запись в статус cancelled и отправляет уведомление об отмене
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Appointment, error) {
	s.logger.Info("Cancel: appointment id=%s", id)

	appt, err := s.mutate(ctx, "Cancel", id, func(a *domain.Appointment, _ []domain.Appointment) error {
		if !a.CanBeCancelled() {
			return ErrCannotCancel
		}
		a.Status = domain.StatusCancelled
		return nil
	})
	s.observe(opCancel, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	s.dispatch(ctx, domain.NotificationCancellation, *appt)
	return appt, nil
}

// Delete удаляет запись и отправляет уведомление об отмене
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: appointment id=%s", id)

	appt, err := s.remove(ctx, id)
	s.observe(opDelete, err)
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	s.dispatch(ctx, domain.NotificationCancellation, *appt)
	return nil
}

func (s *Service) remove(ctx context.Context, id string) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx, "Delete")
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		s.logger.Warn("Delete: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	removed := all[idx]
	all = append(all[:idx], all[idx+1:]...)
	if err := s.save(ctx, "Delete", all); err != nil {
		return nil, err
	}

	return &removed, nil
}

// SendReminder синхронно отправляет напоминание и возвращает результат доставки
func (s *Service) SendReminder(ctx context.Context, id string) (bool, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		s.observe(opReminder, err)
		return false, err
	}

	sent := false
	if s.notifier != nil {
		sent = s.notifier.SendReminder(ctx, *appt)
	}
	s.observe(opReminder, nil)
	s.logger.Info("SendReminder: appointment id=%s, delivered=%t", id, sent)
	return sent, nil
}

// Get возвращает запись по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		s.logger.Warn("Get: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}
	return &all[idx], nil
}

// List возвращает все записи
func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.load(ctx, "List")
}

// ListForDate возвращает неотменённые записи дня, упорядоченные по времени начала
func (s *Service) ListForDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	all, err := s.load(ctx, "ListForDate")
	if err != nil {
		return nil, err
	}

	result := activeOnDay(all, date)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// ListForClient возвращает все записи клиента по email (без учёта регистра)
func (s *Service) ListForClient(ctx context.Context, email string) ([]domain.Appointment, error) {
	all, err := s.load(ctx, "ListForClient")
	if err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, 0)
	for _, a := range all {
		if strings.EqualFold(a.Client.Email, email) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Wait ожидает завершения всех отправленных в фоне уведомлений
func (s *Service) Wait() {
	s.wg.Wait()
}

// mutate находит запись по ID, применяет fn и сохраняет коллекцию
// fn получает копию записи и все остальные записи журнала
func (s *Service) mutate(ctx context.Context, op string, id string, fn func(a *domain.Appointment, others []domain.Appointment) error) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx, op)
	if err != nil {
		return nil, err
	}

	idx := indexOf(all, id)
	if idx < 0 {
		s.logger.Warn("%s: appointment id=%s not found", op, id)
		return nil, ErrAppointmentNotFound
	}

	others := make([]domain.Appointment, 0, len(all)-1)
	others = append(others, all[:idx]...)
	others = append(others, all[idx+1:]...)

	updated := all[idx]
	if err := fn(&updated, others); err != nil {
		s.logger.Warn("%s: appointment id=%s rejected: %v", op, id, err)
		return nil, err
	}
	all[idx] = updated

	if err := s.save(ctx, op, all); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Service) load(ctx context.Context, op string) ([]domain.Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return all, nil
}

func (s *Service) save(ctx context.Context, op string, all []domain.Appointment) error {
	if err := s.repo.SaveAll(ctx, all); err != nil {
		s.logger.Error("%s: failed to save appointments: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

// dispatch отправляет уведомление в фоне. Ошибка доставки не откатывает изменение
func (s *Service) dispatch(ctx context.Context, kind domain.NotificationKind, appt domain.Appointment) {
	if s.notifier == nil {
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var sent bool
		switch kind {
		case domain.NotificationCancellation:
			sent = s.notifier.SendCancellation(bgCtx, appt)
		default:
			sent = s.notifier.SendConfirmation(bgCtx, appt)
		}

		if !sent {
			s.logger.Warn("dispatch: %s notification for appointment id=%s was not delivered", kind, appt.ID)
		}
	}()
}

func (s *Service) observe(op string, err error) {
	if s.metrics != nil {
		s.metrics.IncAppointmentOp(op, err)
	}
}

func validateInput(input domain.AppointmentInput) error {
	if input.Service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Client.Email) == "" {
		return fmt.Errorf("%w: client email is required", ErrInvalidInput)
	}
	return nil
}

// activeOnDay возвращает неотменённые записи того же календарного дня
func activeOnDay(all []domain.Appointment, date time.Time) []domain.Appointment {
	result := make([]domain.Appointment, 0)
	for _, a := range all {
		if a.OccupiesSlot() && a.IsOnDay(date) {
			result = append(result, a)
		}
	}
	return result
}

func indexOf(all []domain.Appointment, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}
