package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Драйверы хранилища
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
	Notifications NotificationsConfig `toml:"notifications"`
	Admin         AdminConfig         `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища ключ-значение
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// SchedulingConfig настройки генерации слотов и записи
type SchedulingConfig struct {
	SlotStepMinutes    int  `toml:"slot_step_minutes"`
	HorizonDays        int  `toml:"horizon_days"`
	SpecialDateLunch   bool `toml:"special_date_lunch"`
	ExcludePastSlots   bool `toml:"exclude_past_slots"`
	RevalidateOnCreate bool `toml:"revalidate_on_create"`
}

// NotificationsConfig настройки уведомлений
type NotificationsConfig struct {
	SimulatedDelayMs int            `toml:"simulated_delay_ms"`
	WhatsAppTimeout  int            `toml:"whatsapp_timeout"`
	SendGrid         SendGridConfig `toml:"sendgrid"`
}

// SendGridConfig настройки отправки email через SendGrid
// Пустой api_key включает имитацию отправки
type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// AdminConfig учётные данные администратора по умолчанию
type AdminConfig struct {
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
	HashCost int    `toml:"hash_cost"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "appointment-service",
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "appointments",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "appointments:",
		},
		Scheduling: SchedulingConfig{
			SlotStepMinutes:    domain.DefaultSlotStepMinutes,
			HorizonDays:        domain.DefaultHorizonDays,
			SpecialDateLunch:   false,
			ExcludePastSlots:   false,
			RevalidateOnCreate: true,
		},
		Notifications: NotificationsConfig{
			SimulatedDelayMs: 1000,
			WhatsAppTimeout:  10,
		},
		Admin: AdminConfig{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: "admin123",
			HashCost: 10,
		},
	}
}

// Load читает конфигурацию из TOML-файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverMemory, DriverRedis:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Scheduling.HorizonDays <= 0 {
		return fmt.Errorf("%w: scheduling.horizon_days must be positive", ErrInvalidConfig)
	}

	if c.Notifications.SimulatedDelayMs < 0 {
		return fmt.Errorf("%w: notifications.simulated_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.Notifications.SendGrid.APIKey != "" && c.Notifications.SendGrid.FromEmail == "" {
		return fmt.Errorf("%w: notifications.sendgrid.from_email is required with api_key", ErrInvalidConfig)
	}

	if c.Admin.Email == "" || len(c.Admin.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: admin.email and admin.password (min %d chars) are required",
			ErrInvalidConfig, domain.MinPasswordLength)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
