package domain

// NotificationKind is the reason a notification is sent
type NotificationKind string

const (
	NotificationConfirmation NotificationKind = "confirmation"
	NotificationCancellation NotificationKind = "cancellation"
	NotificationReminder     NotificationKind = "reminder"
)

// NotificationPreferences are per-user notification settings
type NotificationPreferences struct {
	Email         bool `json:"email"`
	WhatsApp      bool `json:"whatsapp"`
	ReminderHours int  `json:"reminderHours"`
}

// DefaultNotificationPreferences returns the settings of a user who never saved any
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Email:         true,
		WhatsApp:      false,
		ReminderHours: 24,
	}
}

// NotificationPreferencesPatch holds optional preference fields
type NotificationPreferencesPatch struct {
	Email         *bool
	WhatsApp      *bool
	ReminderHours *int
}

// ApplyTo copies the non-nil fields onto the preferences
func (p NotificationPreferencesPatch) ApplyTo(prefs *NotificationPreferences) {
	if p.Email != nil {
		prefs.Email = *p.Email
	}
	if p.WhatsApp != nil {
		prefs.WhatsApp = *p.WhatsApp
	}
	if p.ReminderHours != nil {
		prefs.ReminderHours = *p.ReminderHours
	}
}

// WhatsAppConfig is the optional external dispatch configuration
type WhatsAppConfig struct {
	APIKey   string `json:"apiKey"`
	SenderID string `json:"senderId"`
	BaseURL  string `json:"baseUrl"`
}

// IsComplete returns true if every field needed to send a message is set
func (c *WhatsAppConfig) IsComplete() bool {
	return c.APIKey != "" && c.SenderID != "" && c.BaseURL != ""
}
