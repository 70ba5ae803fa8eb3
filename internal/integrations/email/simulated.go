package email

import (
	"context"
	"time"
)

// SimulatedSender имитирует отправку письма: ждёт delay и пишет в лог
// Используется, когда ключ SendGrid не задан
type SimulatedSender struct {
	delay time.Duration
	log   Logger
}

// NewSimulatedSender создает имитирующего отправителя
func NewSimulatedSender(delay time.Duration, log Logger) *SimulatedSender {
	return &SimulatedSender{
		delay: delay,
		log:   log,
	}
}

// Send ждёт delay (или отмены контекста) и логирует письмо
func (s *SimulatedSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.log.Info("Simulated email to %s, subject=%q", msg.To, msg.Subject)
	return nil
}
