package notifications

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Каналы доставки
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// testMessage текст тестового сообщения
const testMessage = "This is a test message from the appointment scheduling system."

// Reminder запись клиента, по которой пора отправить напоминание
type Reminder struct {
	Appointment domain.Appointment
	HoursUntil  int
	Sent        bool
}

// message текст уведомления для клиента
type message struct {
	Subject string
	Body    string
}

func buildMessage(kind domain.NotificationKind, appt domain.Appointment) message {
	when := appt.Date.Format("2006-01-02 15:04")

	switch kind {
	case domain.NotificationCancellation:
		return message{
			Subject: "Appointment cancelled",
			Body: fmt.Sprintf("Hello %s, your appointment for %s scheduled at %s has been cancelled. Contact us for more information.",
				appt.Client.Name, appt.Service.Name, when),
		}
	case domain.NotificationReminder:
		return message{
			Subject: "Appointment reminder",
			Body: fmt.Sprintf("Hello %s, this is a reminder of your appointment for %s at %s.",
				appt.Client.Name, appt.Service.Name, when),
		}
	default:
		return message{
			Subject: "Appointment confirmed",
			Body: fmt.Sprintf("Hello %s, your appointment for %s is confirmed for %s. Thank you for booking with us!",
				appt.Client.Name, appt.Service.Name, when),
		}
	}
}
