package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/library-api/internal/logger"
)

// Deployment modes accepted in NODE_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the typed process configuration.
type Config struct {
	Host        string `env:"APP_HOST"`
	Port        int    `env:"PORT" validate:"min=1,max=65535"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`
	Environment string `env:"NODE_ENV" validate:"oneof=development production test"`
	StaticToken string `env:"STATIC_TOKEN" validate:"required"`
	LogLevel    string `env:"APP_LOG_LEVEL" validate:"oneof=debug info warn error dpanic panic fatal"`

	// Connection pool settings, derived from Environment unless overridden.
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" validate:"min=1"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT"`
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// poolDefaults returns open/idle connection limits and idle/connect timeouts
// for a deployment mode.
func poolDefaults(environment string) (maxOpen, maxIdle int, idleTime, connectTimeout time.Duration) {
	switch environment {
	case EnvTest:
		return 2, 1, 20 * time.Second, 10 * time.Second
	case EnvProduction:
		return 25, 10, 5 * time.Minute, 10 * time.Second
	default:
		return 10, 5, time.Minute, 10 * time.Second
	}
}

// Load reads an optional env file at path, then the process environment,
// and returns a validated Config. Values already set in the environment take
// precedence over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Warnw("failed to load env file", "path", path, "error", err)
	}

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
			return val
		}
		return defaultValue
	}

	cfg := &Config{
		Host:        getEnv("APP_HOST", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Environment: getEnv("NODE_ENV", EnvDevelopment),
		StaticToken: getEnv("STATIC_TOKEN", ""),
	}
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", logger.LevelForEnvironment(cfg.Environment))

	var err error
	portStr := getEnv("PORT", "3000")
	if cfg.Port, err = strconv.Atoi(portStr); err != nil {
		return nil, fmt.Errorf("%w: PORT %q must be a number between 1 and 65535", ErrInvalidConfig, portStr)
	}

	maxOpen, maxIdle, idleTime, connectTimeout := poolDefaults(cfg.Environment)
	if cfg.MaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", strconv.Itoa(maxOpen))); err != nil {
		return nil, fmt.Errorf("%w: DB_MAX_OPEN_CONNS: %v", ErrInvalidConfig, err)
	}
	if cfg.MaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", strconv.Itoa(maxIdle))); err != nil {
		return nil, fmt.Errorf("%w: DB_MAX_IDLE_CONNS: %v", ErrInvalidConfig, err)
	}
	if cfg.ConnMaxIdleTime, err = time.ParseDuration(getEnv("DB_CONN_MAX_IDLE_TIME", idleTime.String())); err != nil {
		return nil, fmt.Errorf("%w: DB_CONN_MAX_IDLE_TIME: %v", ErrInvalidConfig, err)
	}
	if cfg.ConnectTimeout, err = time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", connectTimeout.String())); err != nil {
		return nil, fmt.Errorf("%w: DB_CONNECT_TIMEOUT: %v", ErrInvalidConfig, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("env")
	})
	return v
}

// validate reports every failing field by its environment variable name.
func validate(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("missing required environment variable %s", e.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v failed rule '%s'", e.Field(), e.Value(), e.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
