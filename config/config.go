package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every knob the service reads from the environment. It is
// built once in main and handed to each constructor; nothing reads ambient
// environment state after startup.
type Config struct {
	Port        string
	FrontendURL string
	DatabaseDSN string

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string // e.g. "Zyph Technologies <no-reply@zyph.tech>"
	SkipTLSVerify bool

	AdminEmail string
	AdminToken string

	RateLimitWindow time.Duration
	RateLimitMax    int
	RedisAddr       string

	Environment string
	DebugSQL    bool
	GinMode     string
}

// Load reads the environment into a Config. Defaults mirror the values the
// service shipped with; validation of required settings happens in main so
// missing credentials are visible at startup.
func Load() Config {
	return Config{
		Port:        getEnv("SERVER_PORT", "3001"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",

		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),

		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 5),
		RedisAddr:       os.Getenv("REDIS_ADDR"),

		Environment: getEnv("ENVIRONMENT", "development"),
		DebugSQL:    os.Getenv("DEBUG_SQL") == "true",
		GinMode:     os.Getenv("GIN_MODE"),
	}
}

// EmailConfigured reports whether the outbound mail provider is usable.
func (c Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// AdminNotifyAddress is where admin notifications go, falling back to the
// sender address when no dedicated admin inbox is configured.
func (c Config) AdminNotifyAddress() string {
	if c.AdminEmail != "" {
		return c.AdminEmail
	}
	return c.SMTPFrom
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
