package config

import "time"

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvSignupBonus       = "SIGNUP_BONUS"
	EnvSpinDuration      = "SPIN_DURATION"
	EnvConfirmLatency    = "CONFIRM_LATENCY"
	EnvRegistryCacheSize = "REGISTRY_CACHE_SIZE"
	EnvRegistryCacheTTL  = "REGISTRY_CACHE_TTL"
	EnvStorePath         = "STORE_PATH"
	EnvChatAPIKey        = "CHAT_API_KEY"
	EnvChatModel         = "CHAT_MODEL"
	EnvChatBaseURL       = "CHAT_BASE_URL"
)

// Default values
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "youthopia-engine"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultSignupBonus       = 5
	DefaultSpinDuration      = 4 * time.Second
	DefaultConfirmLatency    = 1500 * time.Millisecond
	DefaultRegistryCacheSize = 256
	DefaultRegistryCacheTTL  = 30 * time.Second
	DefaultStorePath         = "data/sessions.db"
	DefaultChatModel         = "gemini-2.5-flash"
	DefaultChatBaseURL       = "https://generativelanguage.googleapis.com"
)
