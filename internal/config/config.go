// Package config loads process configuration from the environment, an
// optional .env file and an optional YAML goals file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nutrition/internal/domain"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the goals file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidConfig so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Config is the process configuration.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string
	GoalsFile   string
	Latency     time.Duration
	LogLevel    string
	LogDev      bool
	Seed        bool
	Goals       domain.Goals
}

// goalsFile is the on-disk shape of GOALS_FILE.
type goalsFile struct {
	Goals *domain.Goals `yaml:"goals"`
}

// Load reads the .env file if present, then the environment, then the goals
// file named by GOALS_FILE. Unset keys fall back to defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        env("ADDR", ":8080"),
		WebDir:      env("WEB_DIR", "web"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GoalsFile:   os.Getenv("GOALS_FILE"),
		LogLevel:    env("LOG_LEVEL", "info"),
		Goals:       domain.DefaultGoals(),
	}

	var err error
	if cfg.Latency, err = time.ParseDuration(env("LATENCY", "300ms")); err != nil || cfg.Latency < 0 {
		return nil, &ValidationError{Field: "LATENCY", Message: "must be a non-negative duration", Value: os.Getenv("LATENCY")}
	}
	if cfg.LogDev, err = strconv.ParseBool(env("LOG_DEV", "false")); err != nil {
		return nil, &ValidationError{Field: "LOG_DEV", Message: "must be a boolean", Value: os.Getenv("LOG_DEV")}
	}
	if cfg.Seed, err = strconv.ParseBool(env("SEED", "true")); err != nil {
		return nil, &ValidationError{Field: "SEED", Message: "must be a boolean", Value: os.Getenv("SEED")}
	}

	if cfg.GoalsFile != "" {
		goals, err := LoadGoals(cfg.GoalsFile, cfg.Goals)
		if err != nil {
			return nil, err
		}
		cfg.Goals = goals
	}
	return cfg, nil
}

// LoadGoals reads a YAML goals file. Goals absent from the file keep the
// values in base.
func LoadGoals(path string, base domain.Goals) (domain.Goals, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return base, fmt.Errorf("read goals file: %w", err)
	}

	wrapper := goalsFile{Goals: &base}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return base, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	if err := base.Validate(); err != nil {
		return base, &ValidationError{Field: "goals", Message: err.Error(), Value: base}
	}
	return base, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
