package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
)

// Service сервис пользователей и аутентификации
// Пароли хранятся только в виде bcrypt-хэшей и никогда не возвращаются наружу
type Service struct {
	mu       sync.Mutex
	repo     UserRepository
	admin    AdminSeed
	hashCost int
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(repo UserRepository, admin AdminSeed, hashCost int, logger Logger) *Service {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:     repo,
		admin:    admin,
		hashCost: hashCost,
		logger:   logger,
	}
}

// List возвращает всех пользователей без паролей
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.User, 0, len(all))
	for _, u := range all {
		result = append(result, u.Public())
	}
	return result, nil
}

// Get возвращает пользователя по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(all, id)
	if idx < 0 {
		return nil, ErrUserNotFound
	}
	u := all[idx].Public()
	return &u, nil
}

// Add создает пользователя. Email должен быть уникальным
func (s *Service) Add(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	s.logger.Info("Add: email=%s, role=%s", input.Email, input.Role)

	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if indexByEmail(all, input.Email) >= 0 {
		s.logger.Warn("Add: email=%s already in use", input.Email)
		return nil, ErrEmailInUse
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	all = append(all, u)
	if err := s.save(ctx, all); err != nil {
		return nil, err
	}

	s.logger.Info("Add: successfully created user id=%s", u.ID)
	public := u.Public()
	return &public, nil
}

// CreateAdmin создает администратора
func (s *Service) CreateAdmin(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.Add(ctx, domain.UserInput{Name: name, Email: email, Password: password, Role: domain.RoleAdmin})
}

// CreateClient создает клиента
func (s *Service) CreateClient(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.Add(ctx, domain.UserInput{Name: name, Email: email, Password: password, Role: domain.RoleClient})
}

// Update применяет изменения к пользователю
func (s *Service) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	s.logger.Info("Update: user id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(all, id)
	if idx < 0 {
		s.logger.Warn("Update: user id=%s not found", id)
		return nil, ErrUserNotFound
	}

	updated := all[idx]
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
		if updated.Name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		if other := indexByEmail(all, email); other >= 0 && other != idx {
			s.logger.Warn("Update: email=%s already in use", email)
			return nil, ErrEmailInUse
		}
		updated.Email = email
	}
	if patch.Role != nil {
		if *patch.Role != domain.RoleAdmin && *patch.Role != domain.RoleClient {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *patch.Role)
		}
		updated.Role = *patch.Role
	}
	if patch.Password != nil {
		if len(*patch.Password) < domain.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
		}
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hash
	}

	all[idx] = updated
	if err := s.save(ctx, all); err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated user id=%s", id)
	public := updated.Public()
	return &public, nil
}

// Delete удаляет пользователя. Возвращает false, если пользователя не было
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.logger.Info("Delete: user id=%s", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	idx := indexByID(all, id)
	if idx < 0 {
		return false, nil
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := s.save(ctx, all); err != nil {
		return false, err
	}
	return true, nil
}

// ValidateCredentials проверяет email и пароль
func (s *Service) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByEmail(all, normalizeEmail(email))
	if idx < 0 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(all[idx].PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u := all[idx].Public()
	return &u, nil
}

// Login проверяет учётные данные и сохраняет пользователя как текущую сессию
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login: failed for email=%s", email)
		return nil, err
	}

	if err := s.repo.SaveSession(ctx, *u); err != nil {
		s.logger.Error("Login: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s logged in", u.ID)
	return u, nil
}

// Logout завершает текущую сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Current возвращает пользователя текущей сессии
func (s *Service) Current(ctx context.Context) (*domain.User, error) {
	u, err := s.repo.GetSession(ctx)
	if err != nil {
		if errors.Is(err, userRepo.ErrNoSession) {
			return nil, ErrNotAuthenticated
		}
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}
	return u, nil
}

// load читает пользователей и при первом запуске создает администратора
func (s *Service) load(ctx context.Context) ([]domain.User, error) {
	all, found, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("load: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	if found {
		return all, nil
	}

	hash, err := s.hash(s.admin.Password)
	if err != nil {
		return nil, err
	}
	admin := domain.User{
		ID:           DefaultAdminID,
		Name:         s.admin.Name,
		Email:        normalizeEmail(s.admin.Email),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	all = []domain.User{admin}
	if err := s.save(ctx, all); err != nil {
		return nil, err
	}

	s.logger.Info("load: seeded default administrator email=%s", admin.Email)
	return all, nil
}

func (s *Service) save(ctx context.Context, all []domain.User) error {
	if err := s.repo.SaveAll(ctx, all); err != nil {
		s.logger.Error("save: repository error: %v", err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}
	return string(hash), nil
}

func validateInput(input domain.UserInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(input.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleClient {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func indexByID(all []domain.User, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}

func indexByEmail(all []domain.User, email string) int {
	for i := range all {
		if all[i].Email == email {
			return i
		}
	}
	return -1
}
