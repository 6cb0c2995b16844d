package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// StartupChannelID receives the one-shot boot announcement; empty disables it
	StartupChannelID string

	// DeepSeekAPIKey enables the LLM persona renderer; empty falls back to templates
	DeepSeekAPIKey string

	MaxAttempts     int
	RetryBackoff    time.Duration
	DeliveryTimeout time.Duration
	PastDueGrace    time.Duration
	ShutdownGrace   time.Duration
	SweepInterval   string // cron spec for the safety-net store sweep
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./reminders.db"),
		Port:               getEnv("PORT", "3000"),
		StartupChannelID:   getEnv("STARTUP_CHANNEL_ID", ""),
		DeepSeekAPIKey:     getEnv("DEEPSEEK_API_KEY", ""),
		MaxAttempts:        getEnvInt("REMINDER_MAX_ATTEMPTS", 3),
		RetryBackoff:       getEnvDuration("REMINDER_RETRY_BACKOFF", 30*time.Second),
		DeliveryTimeout:    getEnvDuration("DELIVERY_TIMEOUT", 10*time.Second),
		PastDueGrace:       getEnvDuration("PAST_DUE_GRACE", 30*time.Second),
		ShutdownGrace:      getEnvDuration("SHUTDOWN_GRACE", 15*time.Second),
		SweepInterval:      getEnv("SWEEP_INTERVAL", "@every 5m"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
