package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	GroupService GroupServiceConfig `toml:"group_service"`
	Scheduling   SchedulingConfig   `toml:"scheduling"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто - только stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GroupServiceConfig настройки клиента сервиса групп
type GroupServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SchedulingConfig рабочее окно и подбор альтернатив
type SchedulingConfig struct {
	WindowStart     string `toml:"window_start"` // HH:MM
	WindowEnd       string `toml:"window_end"`   // HH:MM, "24:00" - до конца суток
	MaxSuggestions  int    `toml:"max_suggestions"`
	DefaultTimezone string `toml:"default_timezone"` // IANA, для площадок без часового пояса
}

// RateLimitConfig ограничение частоты запросов с одного IP
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "venue_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "venue_booking_service",
		},
		GroupService: GroupServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Scheduling: SchedulingConfig{
			WindowStart:     domain.DefaultWindowStart,
			WindowEnd:       domain.DefaultWindowEnd,
			MaxSuggestions:  domain.DefaultMaxSuggestions,
			DefaultTimezone: domain.DefaultVenueTimezone,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             50,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.GroupService.URL == "" {
		return fmt.Errorf("%w: group_service.url is required", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_minute and rate_limit.burst must be positive", ErrInvalidConfig)
	}

	if _, err := c.SchedulingPolicy(); err != nil {
		return err
	}

	return nil
}

// SchedulingPolicy собирает политику планирования из секции [scheduling]
func (c *Config) SchedulingPolicy() (domain.SchedulingPolicy, error) {
	openTime, err := types.NewTimeStringFromString(c.Scheduling.WindowStart)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: scheduling.window_start: %v", ErrInvalidConfig, err)
	}

	closeTime, err := types.NewTimeStringFromString(c.Scheduling.WindowEnd)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: scheduling.window_end: %v", ErrInvalidConfig, err)
	}

	if !openTime.IsBefore(closeTime) {
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: scheduling.window_start %s must be before window_end %s",
			ErrInvalidConfig, openTime, closeTime)
	}

	if c.Scheduling.MaxSuggestions < 0 {
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: scheduling.max_suggestions must not be negative", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(c.Scheduling.DefaultTimezone)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("%w: scheduling.default_timezone: %v", ErrInvalidConfig, err)
	}

	return domain.SchedulingPolicy{
		OpenTime:        openTime,
		CloseTime:       closeTime,
		MaxSuggestions:  c.Scheduling.MaxSuggestions,
		DefaultLocation: loc,
	}, nil
}

// GroupServiceTimeout таймаут запросов к сервису групп
func (c *Config) GroupServiceTimeout() time.Duration {
	return time.Duration(c.GroupService.Timeout) * time.Second
}
