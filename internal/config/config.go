package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Log       LogConfig
	ExportDir string `env:"EXPORT_DIR" validate:"required"`
}

// DatabaseConfig holds database connection settings.
// Path is used by the sqlite driver, the remaining fields by postgres.
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" validate:"required,oneof=sqlite postgres"`
	Path     string `env:"DB_PATH" validate:"required_if=Driver sqlite"`
	Host     string `env:"DB_HOST" validate:"required_if=Driver postgres"`
	Port     string `env:"DB_PORT" validate:"omitempty,numeric"`
	Name     string `env:"DB_NAME" validate:"required_if=Driver postgres"`
	User     string `env:"DB_USER" validate:"required_if=Driver postgres"`
	Password string `env:"DB_PASSWORD" validate:"required_if=Driver postgres"`
	SSLMode  string `env:"DB_SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `env:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	File  string `env:"LOG_FILE" validate:"required"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:     getEnv("DB_PATH", "flashcards.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "warn")),
			File:  getEnv("LOG_FILE", "stderr"),
		},
		ExportDir: getEnv("EXPORT_DIR", "."),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration and reports problems by variable name
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
