package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Client клиент внешнего WhatsApp API
// Адрес и ключ берутся из сохранённой конфигурации при каждой отправке
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp API
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет текстовое сообщение на номер phone
func (c *Client) Send(ctx context.Context, cfg domain.WhatsAppConfig, phone, text string) error {
	if !cfg.IsComplete() {
		return ErrNotConfigured
	}
	if phone == "" {
		return ErrMissingPhone
	}

	body, err := json.Marshal(SendRequest{
		From: cfg.SenderID,
		To:   phone,
		Text: text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: api key rejected", ErrRejected)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRejected, result.Error)
	}

	c.log.Info("WhatsApp message sent to %s", phone)
	return nil
}
