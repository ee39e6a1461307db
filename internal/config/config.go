package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// An empty Host selects the in-memory document store.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
}

// Enabled reports whether a PostgreSQL backend is configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds object storage settings for attachments.
// An empty Endpoint disables attachment upload.
type MinIOConfig struct {
	Endpoint      string        `env:"MINIO_ENDPOINT"`
	AccessKey     string        `env:"MINIO_ACCESS_KEY"`
	SecretKey     string        `env:"MINIO_SECRET_KEY"`
	Bucket        string        `env:"MINIO_BUCKET" envDefault:"attachments"`
	UseSSL        bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	PresignExpiry time.Duration `env:"MINIO_PRESIGN_EXPIRY" envDefault:"15m"`
}

func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// SearchConfig selects where each user's recent searches are kept.
type SearchConfig struct {
	Backend       string `env:"RECENT_SEARCH_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"RECENT_SEARCH_SQLITE_PATH" envDefault:"./data/state.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// OtelConfig configures trace export.
type OtelConfig struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Protocol string `env:"OTEL_EXPORTER_OTLP_PROTOCOL" envDefault:"grpc"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	AppHost  string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port     string `env:"PORT" envDefault:"8080"`
	Locale   string `env:"APP_LOCALE" envDefault:"dr"`
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kabul"`
	SeedDemo bool   `env:"SEED_DEMO" envDefault:"false"`

	Database DatabaseConfig
	MinIO    MinIOConfig
	Search   SearchConfig
	Otel     OtelConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.Search.Backend {
	case "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unsupported RECENT_SEARCH_BACKEND %q", cfg.Search.Backend)
	}
	return &cfg, nil
}

// Location resolves Timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
