package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestClient_Send(t *testing.T) {
	var got SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(SendResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(time.Second, logger.NewNop())
	cfg := domain.WhatsAppConfig{APIKey: "key-1", SenderID: "+100", BaseURL: server.URL + "/"}

	err := client.Send(context.Background(), cfg, "+200", "hello")
	require.NoError(t, err)
	assert.Equal(t, SendRequest{From: "+100", To: "+200", Text: "hello"}, got)
}

func TestClient_SendErrors(t *testing.T) {
	client := NewClient(time.Second, logger.NewNop())
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		err := client.Send(ctx, domain.WhatsAppConfig{}, "+200", "hello")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("missing phone", func(t *testing.T) {
		err := client.Send(ctx, domain.WhatsAppConfig{APIKey: "k", SenderID: "s", BaseURL: "http://localhost"}, "", "hello")
		assert.ErrorIs(t, err, ErrMissingPhone)
	})

	t.Run("rejected by api", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(SendResponse{Success: false, Error: "invalid number"})
		}))
		defer server.Close()

		err := client.Send(ctx, domain.WhatsAppConfig{APIKey: "k", SenderID: "s", BaseURL: server.URL}, "+200", "hello")
		assert.ErrorIs(t, err, ErrRejected)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		err := client.Send(ctx, domain.WhatsAppConfig{APIKey: "k", SenderID: "s", BaseURL: server.URL}, "+200", "hello")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
