package whatsapp

// SendRequest тело запроса POST {baseUrl}/send
type SendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// SendResponse ответ API на отправку сообщения
type SendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
