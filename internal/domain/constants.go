package domain

// Scheduling defaults
const (
	DefaultSlotStepMinutes = 30
	DefaultHorizonDays     = 14
	DaysInWeek             = 7

	// Используются, когда у открытой особой даты не заданы часы работы
	DefaultSpecialOpenTime  = "09:00"
	DefaultSpecialCloseTime = "17:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxDescriptionLength      = 500
	MinPasswordLength         = 6
	MaxReminderHours          = 168 // 1 week
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Storage keys of the persisted collections
const (
	KeyAppointments      = "appointments"
	KeyServices          = "services"
	KeyBusinessHours     = "business_hours"
	KeySpecialDates      = "special_dates"
	KeyUsers             = "app_users"
	KeyAuthUser          = "auth_user"
	KeyNotificationPrefs = "notification_prefs_"
	KeyWhatsAppConfig    = "whatsapp_api_config"
)
