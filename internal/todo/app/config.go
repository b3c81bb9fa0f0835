package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envProd = "prod"

type Config struct {
	Env                 string        `envconfig:"ENV" default:"dev"`                    // dev, staging, prod
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`             // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`            // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                  // HTTP server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"`  // Graceful shutdown timeout
	DatabaseFile        string        `envconfig:"TODO_DATABASE_FILE" default:"todo.db"` // SQLite database file
	MaxPageSize         int           `envconfig:"TODO_MAX_PAGE_SIZE" default:"100"`     // Upper bound for ?limit=

	JWTSecret    string        `envconfig:"JWT_SECRET"`                    // HS256 key; generated outside prod when empty
	JWTIssuer    string        `envconfig:"JWT_ISSUER" default:"todo-api"` // iss claim
	JWTExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"168h"` // Session lifetime

	Argon2MemoryKiB   uint32 `envconfig:"PASSWORD_ARGON2_MEMORY_KIB"`  // 0 keeps the library default
	Argon2Iterations  uint32 `envconfig:"PASSWORD_ARGON2_ITERATIONS"`  // 0 keeps the library default
	Argon2Parallelism uint8  `envconfig:"PASSWORD_ARGON2_PARALLELISM"` // 0 keeps the library default
	PepperFile        string `envconfig:"PASSWORD_PEPPER_FILE"`        // Optional; empty disables peppering
}

// LoadConfig reads an optional .env file from the working directory, then
// the process environment. Real environment variables win over .env values.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	case c.DatabaseFile == "":
		return errors.New("TODO_DATABASE_FILE must not be empty")
	case c.JWTIssuer == "":
		return errors.New("JWT_ISSUER must not be empty")
	case c.JWTExpiresIn <= 0:
		return fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.JWTExpiresIn)
	case c.MaxPageSize <= 0:
		return fmt.Errorf("TODO_MAX_PAGE_SIZE must be positive, got %d", c.MaxPageSize)
	}

	if c.JWTSecret == "" {
		if c.IsProd() {
			return errors.New("JWT_SECRET is required when ENV=prod")
		}
		return nil
	}
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	}
	return nil
}

func (c Config) IsProd() bool { return c.Env == envProd }
