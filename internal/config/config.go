package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the engine configuration
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	Environment string `validate:"required,oneof=dev development staging prod test"`

	// Reward engine tuning
	SignupBonus  int           `validate:"gte=0"`
	SpinDuration time.Duration `validate:"gte=0"`

	// Simulated round-trip for registration and redemption confirmations
	ConfirmLatency time.Duration `validate:"gte=0"`

	// Registry lookup cache
	RegistryCacheSize int           `validate:"gt=0"`
	RegistryCacheTTL  time.Duration `validate:"gt=0"`

	// Snapshot store
	StorePath string `validate:"required"`

	// Festival assistant pass-through. Empty API key disables outbound calls
	// and the assistant answers with its fallback line.
	ChatAPIKey  string
	ChatModel   string `validate:"required"`
	ChatBaseURL string `validate:"required,url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		StorePath:   getEnv(EnvStorePath, DefaultStorePath),
		ChatAPIKey:  getEnv(EnvChatAPIKey, ""),
		ChatModel:   getEnv(EnvChatModel, DefaultChatModel),
		ChatBaseURL: getEnv(EnvChatBaseURL, DefaultChatBaseURL),
	}

	var err error
	if cfg.SignupBonus, err = getEnvInt(EnvSignupBonus, DefaultSignupBonus); err != nil {
		return nil, err
	}
	if cfg.RegistryCacheSize, err = getEnvInt(EnvRegistryCacheSize, DefaultRegistryCacheSize); err != nil {
		return nil, err
	}
	if cfg.SpinDuration, err = getEnvDuration(EnvSpinDuration, DefaultSpinDuration); err != nil {
		return nil, err
	}
	if cfg.ConfirmLatency, err = getEnvDuration(EnvConfirmLatency, DefaultConfirmLatency); err != nil {
		return nil, err
	}
	if cfg.RegistryCacheTTL, err = getEnvDuration(EnvRegistryCacheTTL, DefaultRegistryCacheTTL); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvDuration retrieves a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
