package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func TestSimulatedSender(t *testing.T) {
	sender := NewSimulatedSender(10*time.Millisecond, logger.NewNop())

	err := sender.Send(context.Background(), Message{To: "ann@example.com", Subject: "hi"})
	assert.NoError(t, err)

	err = sender.Send(context.Background(), Message{Subject: "hi"})
	assert.ErrorIs(t, err, ErrMissingRecipient)
}

func TestSimulatedSender_Cancelled(t *testing.T) {
	sender := NewSimulatedSender(time.Hour, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, Message{To: "ann@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}
