package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

type stubUsers map[string]domain.User

func (s stubUsers) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return &u, nil
}

func newRouter() *mux.Router {
	provider := stubUsers{
		"admin-1":  {ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin},
		"client-1": {ID: "client-1", Email: "ann@example.com", Role: domain.RoleClient},
	}

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetUserID(r.Context())
		w.Header().Set("X-Seen-User", id)
		w.WriteHeader(http.StatusOK)
	})

	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(Auth(provider, logger.NewNop()))
	protected.Handle("/me", ok)

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(RequireAdmin)
	admin.Handle("/admin", ok)
	return r
}

func serve(r http.Handler, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", "ghost").Code)

	rec := serve(r, "/me", "client-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-1", rec.Header().Get("X-Seen-User"))
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusForbidden, serve(r, "/admin", "client-1").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/admin", "admin-1").Code)
}

func TestCanAccessClient(t *testing.T) {
	client := &domain.User{Email: "ann@example.com", Role: domain.RoleClient}
	admin := &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin}

	assert.True(t, CanAccessClient(client, "ANN@example.com"))
	assert.False(t, CanAccessClient(client, "bob@example.com"))
	assert.True(t, CanAccessClient(admin, "bob@example.com"))
	assert.False(t, CanAccessClient(nil, "ann@example.com"))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	serve(r, "/appointments/abc", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/appointments/{appointmentId}", "404")))
}
