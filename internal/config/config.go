package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Profile sources for the routing flow.
const (
	ProfileSourceLocal = "local"
	ProfileSourceHTTP  = "http"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv   string `env:"APP_ENV"   envDefault:"development"`
	AppName  string `env:"APP_NAME"  envDefault:"hrflow"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	SwaggerHost string `env:"SWAGGER_HOST"`

	MySQLDSN string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/hrflow?charset=utf8mb4&parseTime=True&loc=Local"`
	ResetDB  bool   `env:"RESET_DB"  envDefault:"false"`

	// RedisAddr empty keeps cache and session state in process memory.
	RedisAddr string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB"       envDefault:"0"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"change-me"`

	// EmpAPIKey guards the employee details endpoint.
	EmpAPIKey string `env:"EMP_API_KEY" envDefault:"change-me"`

	Profile ProfileConfig `envPrefix:"PROFILE_"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// ProfileConfig selects where the routing flow fetches employee records from.
type ProfileConfig struct {
	Source     string        `env:"SOURCE"      envDefault:"local"`
	BaseURL    string        `env:"BASE_URL"`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"10s"`
	RetryLimit int           `env:"RETRY_LIMIT" envDefault:"1"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Profile.Source = strings.ToLower(strings.TrimSpace(c.Profile.Source))
	if c.Profile.Source == "" {
		c.Profile.Source = ProfileSourceLocal
	}
	if c.Profile.Timeout <= 0 {
		c.Profile.Timeout = 10 * time.Second
	}
	if c.Profile.RetryLimit < 0 {
		c.Profile.RetryLimit = 0
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Profile.Source {
	case ProfileSourceLocal:
	case ProfileSourceHTTP:
		if strings.TrimSpace(c.Profile.BaseURL) == "" {
			return errors.New("PROFILE_BASE_URL is required when PROFILE_SOURCE=http")
		}
	default:
		return fmt.Errorf("unknown PROFILE_SOURCE %q", c.Profile.Source)
	}
	if c.AppEnv == "production" && (c.JWTSecret == "change-me" || c.EmpAPIKey == "change-me") {
		return errors.New("JWT_SECRET and EMP_API_KEY must be set in production")
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}
