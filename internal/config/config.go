package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// envPrefix префикс переменных окружения, переопределяющих значения из файла
// Например: BOOKING_DATABASE_PASSWORD, BOOKING_SERVER_HTTP_PORT
const envPrefix = "BOOKING"

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server" split_words:"true"`
	Database   DatabaseConfig   `toml:"database" split_words:"true"`
	Logs       LogsConfig       `toml:"logs" split_words:"true"`
	Metrics    MetricsConfig    `toml:"metrics" split_words:"true"`
	Slots      SlotsConfig      `toml:"slots" split_words:"true"`
	Statistics StatisticsConfig `toml:"statistics" split_words:"true"`
	Redis      RedisConfig      `toml:"redis" split_words:"true"`
	Events     EventsConfig     `toml:"events" split_words:"true"`
	CORS       CORSConfig       `toml:"cors" split_words:"true"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`     // секунды
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// SlotsConfig параметры расчета свободных слотов
type SlotsConfig struct {
	Timezone         string `toml:"timezone" split_words:"true"` // IANA, используется когда у сайта не задан свой
	WorkStart        string `toml:"work_start" split_words:"true"`
	WorkEnd          string `toml:"work_end" split_words:"true"`
	MinLeadMinutes   int    `toml:"min_lead_minutes" split_words:"true"`
	AllowedDurations []int  `toml:"allowed_durations" split_words:"true"`
}

// Location загружает часовой пояс по умолчанию
func (s SlotsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// WorkingHours рабочие часы в виде TimeString
func (s SlotsConfig) WorkingHours() (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(s.WorkStart)
	if err != nil {
		return "", "", fmt.Errorf("work_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(s.WorkEnd)
	if err != nil {
		return "", "", fmt.Errorf("work_end: %w", err)
	}
	return start, end, nil
}

type StatisticsConfig struct {
	WindowDays int `toml:"window_days" split_words:"true"`
}

// RedisConfig кэш токенов сайтов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	Addr     string `toml:"addr" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
	TokenTTL int    `toml:"token_ttl" split_words:"true"` // секунды
}

// EventsConfig публикация событий бронирований в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled" split_words:"true"`
	URL      string `toml:"url" split_words:"true"`
	Exchange string `toml:"exchange" split_words:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" split_words:"true"`
	MaxAge         int      `toml:"max_age" split_words:"true"` // секунды
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: env overrides: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "site-bookings",
		},
		Slots: SlotsConfig{
			Timezone:         "Asia/Tashkent",
			WorkStart:        "09:00",
			WorkEnd:          "17:00",
			MinLeadMinutes:   120,
			AllowedDurations: []int{15, 30, 45, 60, 90, 120},
		},
		Statistics: StatisticsConfig{
			WindowDays: 30,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			TokenTTL: 300,
		},
		Events: EventsConfig{
			Exchange: "bookings",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         3600,
		},
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := c.Slots.Location(); err != nil {
		return fmt.Errorf("%w: slots.timezone %q: %v", ErrInvalidConfig, c.Slots.Timezone, err)
	}

	start, end, err := c.Slots.WorkingHours()
	if err != nil {
		return fmt.Errorf("%w: slots: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: slots.work_start must be before slots.work_end", ErrInvalidConfig)
	}

	if c.Slots.MinLeadMinutes < 0 {
		return fmt.Errorf("%w: slots.min_lead_minutes must not be negative", ErrInvalidConfig)
	}

	if len(c.Slots.AllowedDurations) == 0 {
		return fmt.Errorf("%w: slots.allowed_durations is empty", ErrInvalidConfig)
	}
	for _, d := range c.Slots.AllowedDurations {
		if d <= 0 {
			return fmt.Errorf("%w: slots.allowed_durations contains non-positive value %d", ErrInvalidConfig, d)
		}
	}

	if c.Statistics.WindowDays <= 0 {
		return fmt.Errorf("%w: statistics.window_days must be positive", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	if c.Events.Enabled && (c.Events.URL == "" || c.Events.Exchange == "") {
		return fmt.Errorf("%w: events.url and events.exchange are required when events are enabled", ErrInvalidConfig)
	}

	return nil
}
