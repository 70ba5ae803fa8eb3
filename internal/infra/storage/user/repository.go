package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/kv"
)

// Repository репозиторий пользователей (app_users) и текущей сессии (auth_user)
type Repository struct {
	store  kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store kv.Store, logger Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// List возвращает пользователей и признак того, что коллекция уже существовала
// found=false означает первый запуск: сервис должен заполнить коллекцию
func (r *Repository) List(ctx context.Context) ([]domain.User, bool, error) {
	var users []domain.User

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyUsers, &users)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("List: stored users are corrupted, reseeding: %v", err)
			return []domain.User{}, false, nil
		}
		return nil, false, fmt.Errorf("%w: List: %v", ErrLoad, err)
	}
	if users == nil {
		users = []domain.User{}
	}

	return users, found, nil
}

// SaveAll перезаписывает коллекцию пользователей целиком
func (r *Repository) SaveAll(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	if err := kv.SaveJSON(ctx, r.store, domain.KeyUsers, users); err != nil {
		return fmt.Errorf("%w: SaveAll: %v", ErrSave, err)
	}
	return nil
}

// GetSession возвращает текущего авторизованного пользователя
func (r *Repository) GetSession(ctx context.Context) (*domain.User, error) {
	var u domain.User

	found, err := kv.LoadJSON(ctx, r.store, domain.KeyAuthUser, &u)
	if err != nil {
		if errors.Is(err, kv.ErrCorrupted) {
			r.logger.Warn("GetSession: stored session is corrupted, ignoring: %v", err)
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("%w: GetSession: %v", ErrLoad, err)
	}
	if !found {
		return nil, ErrNoSession
	}

	return &u, nil
}

// SaveSession сохраняет авторизованного пользователя без пароля
func (r *Repository) SaveSession(ctx context.Context, u domain.User) error {
	if err := kv.SaveJSON(ctx, r.store, domain.KeyAuthUser, u.Public()); err != nil {
		return fmt.Errorf("%w: SaveSession: %v", ErrSave, err)
	}
	return nil
}

// ClearSession удаляет текущую сессию
func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, domain.KeyAuthUser); err != nil {
		return fmt.Errorf("%w: ClearSession: %v", ErrSave, err)
	}
	return nil
}
