package email

// Message письмо для отправки
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// SendGridConfig настройки отправки через SendGrid
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}
