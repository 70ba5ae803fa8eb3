package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
)

// UserIDHeader заголовок с ID авторизованного пользователя
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUnknownUser   = "пользователь не найден"
	msgForbidden     = "доступ запрещен"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth проверяет заголовок X-User-ID и кладёт пользователя в контекст запроса
func Auth(provider UserProvider, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, UserIDHeader)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			user, err := provider.Get(r.Context(), userID)
			if err != nil {
				if errors.Is(err, users.ErrUserNotFound) {
					logger.Warn("%s %s - Unknown user: user_id=%s", r.Method, r.URL.Path, userID)
					handlers.RespondUnauthorized(w, msgUnknownUser)
					return
				}
				logger.Error("%s %s - Failed to resolve user: user_id=%s, error=%v", r.Method, r.URL.Path, userID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin пропускает только администраторов. Используется после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if !user.IsAdmin() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser возвращает контекст с авторизованным пользователем
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser возвращает авторизованного пользователя из контекста
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok && user != nil
}

// GetUserID возвращает ID авторизованного пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

// CanAccessClient возвращает true, если пользователь администратор или владелец email
func CanAccessClient(user *domain.User, clientEmail string) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || strings.EqualFold(user.Email, clientEmail)
}
