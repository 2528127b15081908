package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// DefaultJWTSecret is the placeholder signing key used when JWT_SECRET is unset.
const DefaultJWTSecret = "change-me"

// ErrDefaultJWTSecret is returned when a database-backed deployment keeps
// the placeholder signing key.
var ErrDefaultJWTSecret = errors.New("JWT_SECRET must be set when DATABASE_URL is set")

// Config holds the runtime settings of the storefront API.
type Config struct {
	Port        string        `envconfig:"APP_PORT" default:"8080"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	LoginDelay  time.Duration `envconfig:"LOGIN_DELAY" default:"0s"`
}

// Load reads envFile (if present) into the environment and then processes
// the environment into a Config. A missing env file is not an error.
func Load(envFile string, logger logrus.FieldLogger) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case err == nil:
			logger.Infof("Loaded configuration from %s", envFile)
		case errors.Is(err, fs.ErrNotExist):
			logger.Debugf("No %s file, using environment only", envFile)
		default:
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		if cfg.UseDatabase() {
			return nil, ErrDefaultJWTSecret
		}
		logger.Warn("JWT_SECRET is not set, tokens are signed with the placeholder key")
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }

// UseDatabase reports whether a Postgres DSN was configured.
func (c *Config) UseDatabase() bool { return c.DatabaseURL != "" }
