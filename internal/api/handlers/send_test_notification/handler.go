package send_test_notification

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingContact     = "укажите email или phone"
)

// SendTestRequest HTTP request model
// Если указан email, сообщение уходит на него, иначе на phone через WhatsApp
type SendTestRequest struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SendTestResponse HTTP response model
type SendTestResponse struct {
	Sent bool `json:"sent"`
}

type Handler struct {
	notifications NotificationService
	logger        Logger
}

func NewHandler(notifications NotificationService, logger Logger) *Handler {
	return &Handler{
		notifications: notifications,
		logger:        logger,
	}
}

// Handle POST /api/v1/notifications/test
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendTestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/test - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	contact, isEmail := strings.TrimSpace(req.Email), true
	if contact == "" {
		contact, isEmail = strings.TrimSpace(req.Phone), false
	}
	if contact == "" {
		h.logger.Warn("POST /notifications/test - Missing contact")
		handlers.RespondBadRequest(w, msgMissingContact)
		return
	}

	sent := h.notifications.SendTest(r.Context(), contact, isEmail)

	h.logger.Info("POST /notifications/test - Test notification processed: email=%t, sent=%t", isEmail, sent)
	handlers.RespondJSON(w, http.StatusOK, SendTestResponse{Sent: sent})
}
