package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service сервис каталога услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает все услуги
func (s *Service) List(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Get возвращает услугу по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Service, error) {
	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}

	s.logger.Warn("Get: service id=%s not found", id)
	return nil, ErrServiceNotFound
}

// Add добавляет услугу в каталог
func (s *Service) Add(ctx context.Context, input domain.ServiceInput) (*domain.Service, error) {
	s.logger.Info("Add: name=%q, duration=%d, price=%.2f", input.Name, input.DurationMinutes, input.Price)

	svc := domain.Service{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
	}
	if err := validateService(svc); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	services = append(services, svc)
	if err := s.repo.SaveAll(ctx, services); err != nil {
		s.logger.Error("Add: failed to save: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully added service id=%s", svc.ID)
	return &svc, nil
}

// Update применяет изменения к услуге
// Уже созданные записи хранят свой снимок услуги и не меняются
func (s *Service) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	s.logger.Info("Update: id=%s", id)

	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(services, id)
	if idx < 0 {
		s.logger.Warn("Update: service id=%s not found", id)
		return nil, ErrServiceNotFound
	}

	updated := services[idx]
	patch.ApplyTo(&updated)
	updated.Name = strings.TrimSpace(updated.Name)
	if err := validateService(updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}
	services[idx] = updated

	if err := s.repo.SaveAll(ctx, services); err != nil {
		s.logger.Error("Update: failed to save: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return &updated, nil
}

// Delete удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: id=%s", id)

	services, err := s.List(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(services, id)
	if idx < 0 {
		s.logger.Warn("Delete: service id=%s not found", id)
		return ErrServiceNotFound
	}

	services = append(services[:idx], services[idx+1:]...)
	if err := s.repo.SaveAll(ctx, services); err != nil {
		s.logger.Error("Delete: failed to save: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

func validateService(svc domain.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if svc.DurationMinutes < domain.MinServiceDurationMinutes || svc.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func indexOf(services []domain.Service, id string) int {
	for i := range services {
		if services[i].ID == id {
			return i
		}
	}
	return -1
}
