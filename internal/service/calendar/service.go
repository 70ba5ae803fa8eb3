package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис рабочего календаря: недельный шаблон и особые даты
type Service struct {
	repo             CalendarRepository
	specialDateLunch bool
	logger           Logger
}

// NewService создает новый экземпляр сервиса календаря
// specialDateLunch включает учёт обеда, заданного у открытой особой даты
func NewService(repo CalendarRepository, specialDateLunch bool, logger Logger) *Service {
	return &Service{
		repo:             repo,
		specialDateLunch: specialDateLunch,
		logger:           logger,
	}
}

// GetBusinessHours возвращает семь записей недельного шаблона по порядку дней
func (s *Service) GetBusinessHours(ctx context.Context) ([]domain.BusinessHours, error) {
	hours, err := s.repo.GetBusinessHours(ctx)
	if err != nil {
		s.logger.Error("GetBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// UpdateBusinessHours заменяет запись с тем же днём недели
// Если такой записи нет, ничего не меняется
func (s *Service) UpdateBusinessHours(ctx context.Context, day domain.BusinessHours) error {
	s.logger.Info("UpdateBusinessHours: day=%d, open=%t, %s-%s", day.DayOfWeek, day.IsOpen, day.OpenTime, day.CloseTime)

	if err := validateBusinessHours(day); err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed: %v", err)
		return err
	}

	hours, err := s.GetBusinessHours(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range hours {
		if hours[i].DayOfWeek == day.DayOfWeek {
			hours[i] = day
			replaced = true
			break
		}
	}
	if !replaced {
		s.logger.Warn("UpdateBusinessHours: no record for day=%d, nothing to update", day.DayOfWeek)
		return nil
	}

	if err := s.repo.SaveBusinessHours(ctx, hours); err != nil {
		s.logger.Error("UpdateBusinessHours: failed to save: %v", err)
		return fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessHours: successfully updated day=%d", day.DayOfWeek)
	return nil
}

// ListSpecialDates возвращает особые даты в порядке добавления
func (s *Service) ListSpecialDates(ctx context.Context) ([]domain.SpecialDate, error) {
	dates, err := s.repo.GetSpecialDates(ctx)
	if err != nil {
		s.logger.Error("ListSpecialDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpecialDates - repository error: %v", ErrInternal, err)
	}
	return dates, nil
}

// AddSpecialDate добавляет особую дату. Повторы одного дня допускаются, действует первая
func (s *Service) AddSpecialDate(ctx context.Context, input domain.SpecialDateInput) (*domain.SpecialDate, error) {
	s.logger.Info("AddSpecialDate: date=%s, open=%t", input.Date.Format(domain.DateFormat), input.IsOpen)

	sd := domain.SpecialDate{
		ID:          uuid.NewString(),
		Date:        input.Date,
		IsOpen:      input.IsOpen,
		OpenTime:    input.OpenTime,
		CloseTime:   input.CloseTime,
		LunchStart:  input.LunchStart,
		LunchEnd:    input.LunchEnd,
		Description: input.Description,
	}
	if err := validateSpecialDate(sd); err != nil {
		s.logger.Warn("AddSpecialDate: validation failed: %v", err)
		return nil, err
	}

	dates, err := s.ListSpecialDates(ctx)
	if err != nil {
		return nil, err
	}

	dates = append(dates, sd)
	if err := s.repo.SaveSpecialDates(ctx, dates); err != nil {
		s.logger.Error("AddSpecialDate: failed to save: %v", err)
		return nil, fmt.Errorf("%w: AddSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSpecialDate: successfully added special date id=%s", sd.ID)
	return &sd, nil
}

// UpdateSpecialDate применяет изменения к особой дате
func (s *Service) UpdateSpecialDate(ctx context.Context, id string, patch domain.SpecialDatePatch) (*domain.SpecialDate, error) {
	s.logger.Info("UpdateSpecialDate: id=%s", id)

	dates, err := s.ListSpecialDates(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfSpecialDate(dates, id)
	if idx < 0 {
		s.logger.Warn("UpdateSpecialDate: special date id=%s not found", id)
		return nil, ErrSpecialDateNotFound
	}

	updated := dates[idx]
	patch.ApplyTo(&updated)
	if err := validateSpecialDate(updated); err != nil {
		s.logger.Warn("UpdateSpecialDate: validation failed: %v", err)
		return nil, err
	}
	dates[idx] = updated

	if err := s.repo.SaveSpecialDates(ctx, dates); err != nil {
		s.logger.Error("UpdateSpecialDate: failed to save: %v", err)
		return nil, fmt.Errorf("%w: UpdateSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpecialDate: successfully updated special date id=%s", id)
	return &updated, nil
}

// DeleteSpecialDate удаляет особую дату
func (s *Service) DeleteSpecialDate(ctx context.Context, id string) error {
	s.logger.Info("DeleteSpecialDate: id=%s", id)

	dates, err := s.ListSpecialDates(ctx)
	if err != nil {
		return err
	}

	idx := indexOfSpecialDate(dates, id)
	if idx < 0 {
		s.logger.Warn("DeleteSpecialDate: special date id=%s not found", id)
		return ErrSpecialDateNotFound
	}

	dates = append(dates[:idx], dates[idx+1:]...)
	if err := s.repo.SaveSpecialDates(ctx, dates); err != nil {
		s.logger.Error("DeleteSpecialDate: failed to save: %v", err)
		return fmt.Errorf("%w: DeleteSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDate: successfully deleted special date id=%s", id)
	return nil
}

// IsDateAvailable возвращает true, если в этот календарный день бизнес открыт
// Особая дата имеет приоритет над недельным шаблоном
func (s *Service) IsDateAvailable(ctx context.Context, date time.Time) (bool, error) {
	sd, day, err := s.resolve(ctx, date)
	if err != nil {
		return false, err
	}
	if sd != nil {
		return sd.IsOpen, nil
	}
	if day != nil {
		return day.IsOpen, nil
	}
	return false, nil
}

// GetHoursForDate возвращает действующие часы работы на день
// ok=false, если в этот день бизнес закрыт
func (s *Service) GetHoursForDate(ctx context.Context, date time.Time) (*domain.DayHours, bool, error) {
	sd, day, err := s.resolve(ctx, date)
	if err != nil {
		return nil, false, err
	}

	if sd != nil {
		if !sd.IsOpen {
			return nil, false, nil
		}

		openAt, closeAt := effectiveSpecialHours(*sd)
		hours := &domain.DayHours{
			OpenTime:  openAt,
			CloseTime: closeAt,
		}
		if s.specialDateLunch && sd.LunchStart != nil && sd.LunchEnd != nil {
			hours.LunchStart = sd.LunchStart
			hours.LunchEnd = sd.LunchEnd
		}
		return hours, true, nil
	}

	if day == nil || !day.IsOpen {
		return nil, false, nil
	}

	return &domain.DayHours{
		OpenTime:   day.OpenTime,
		CloseTime:  day.CloseTime,
		LunchStart: day.LunchStart,
		LunchEnd:   day.LunchEnd,
	}, true, nil
}

// resolve находит первую особую дату этого дня или запись недельного шаблона
func (s *Service) resolve(ctx context.Context, date time.Time) (*domain.SpecialDate, *domain.BusinessHours, error) {
	dates, err := s.ListSpecialDates(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range dates {
		if dates[i].Matches(date) {
			return &dates[i], nil, nil
		}
	}

	hours, err := s.GetBusinessHours(ctx)
	if err != nil {
		return nil, nil, err
	}
	weekday := int(domain.Local(date).Weekday())
	for i := range hours {
		if hours[i].DayOfWeek == weekday {
			return nil, &hours[i], nil
		}
	}

	return nil, nil, nil
}

// effectiveSpecialHours возвращает часы особой даты, подставляя 09:00/17:00 вместо пустых
func effectiveSpecialHours(sd domain.SpecialDate) (types.TimeString, types.TimeString) {
	openAt := types.TimeString(domain.DefaultSpecialOpenTime)
	if sd.OpenTime != nil && !sd.OpenTime.IsZero() {
		openAt = *sd.OpenTime
	}
	closeAt := types.TimeString(domain.DefaultSpecialCloseTime)
	if sd.CloseTime != nil && !sd.CloseTime.IsZero() {
		closeAt = *sd.CloseTime
	}
	return openAt, closeAt
}

func indexOfSpecialDate(dates []domain.SpecialDate, id string) int {
	for i := range dates {
		if dates[i].ID == id {
			return i
		}
	}
	return -1
}
