package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	AuthProviderJWT    = "jwt"
	AuthProviderRemote = "remote"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Auth            AuthConfig            `toml:"auth"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
	Redis           RedisConfig           `toml:"redis"`
	Booking         BookingConfig         `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
	// Разрешённые источники CORS; пустой список отключает CORS
	CORSOrigins []string `toml:"cors_origins"`
}

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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	Provider string `toml:"provider"` // jwt | remote
	Secret   string `toml:"secret"`
	Issuer   string `toml:"issuer"`
	Audience string `toml:"audience"`
	Leeway   int    `toml:"leeway"` // секунды
}

type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type BookingConfig struct {
	Timezone           string `toml:"timezone"`
	MaxTxRetries       uint64 `toml:"max_tx_retries"`
	TxRetryBaseDelayMs int    `toml:"tx_retry_base_delay_ms"`
}

// TxRetryBaseDelay начальная задержка между повторами сериализуемой транзакции
func (c BookingConfig) TxRetryBaseDelay() time.Duration {
	return time.Duration(c.TxRetryBaseDelayMs) * time.Millisecond
}

// Location часовой пояс, в котором трактуются даты записей
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Default конфигурация по умолчанию
func Default() *Config {
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
			User:            "postgres",
			DBName:          "college_appointments",
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
			ServiceName: "college_appointments",
		},
		Auth: AuthConfig{
			Provider: AuthProviderJWT,
		},
		IdentityService: IdentityServiceConfig{
			Timeout: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Booking: BookingConfig{
			Timezone:           "UTC",
			MaxTxRetries:       3,
			TxRetryBaseDelayMs: 20,
		},
	}
}

// Load читает TOML поверх значений по умолчанию, затем .env и переменные окружения
// Отсутствующий файл конфигурации не ошибка
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.Secret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет обязательные поля и согласованность секций
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	// Учётные данные разрешены, поэтому источник "*" недопустим
	if slices.Contains(c.Server.CORSOrigins, "*") {
		return fmt.Errorf("%w: server.cors_origins must list explicit origins, not \"*\"", ErrInvalidConfig)
	}

	switch c.Auth.Provider {
	case AuthProviderJWT:
		if c.Auth.Secret == "" {
			return fmt.Errorf("%w: auth.secret (JWT_SECRET) is required for jwt provider", ErrInvalidConfig)
		}
	case AuthProviderRemote:
		if c.IdentityService.URL == "" {
			return fmt.Errorf("%w: identity_service.url is required for remote provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown auth.provider %q", ErrInvalidConfig, c.Auth.Provider)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}

	if c.Booking.TxRetryBaseDelayMs <= 0 {
		return fmt.Errorf("%w: booking.tx_retry_base_delay_ms must be positive", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
