package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// ReconcileSchedule is a cron spec for the subscription reconciliation
	// sweep, e.g. "@every 24h".
	ReconcileSchedule string
	// CapacityAlertThreshold is the master-account utilization percentage at
	// which a capacity notification is emitted on subscription creation.
	CapacityAlertThreshold int

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string

	// Assistant (OpenAI-compatible chat completions API).
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RECONCILE_SCHEDULE", "@every 24h")
	viper.SetDefault("CAPACITY_ALERT_THRESHOLD", 80)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-5")
	viper.SetDefault("OPENAI_TIMEOUT", "60s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ReconcileSchedule = viper.GetString("RECONCILE_SCHEDULE")

	cfg.CapacityAlertThreshold = viper.GetInt("CAPACITY_ALERT_THRESHOLD")
	if cfg.CapacityAlertThreshold <= 0 || cfg.CapacityAlertThreshold > 100 {
		log.Printf("Warning: Invalid CAPACITY_ALERT_THRESHOLD (%d). Defaulting to 80.\n", cfg.CapacityAlertThreshold)
		cfg.CapacityAlertThreshold = 80
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	cfg.OpenAIModel = viper.GetString("OPENAI_MODEL")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. The assistant endpoint will answer with an unavailable notice.")
	}

	timeoutStr := viper.GetString("OPENAI_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 60 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for OPENAI_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.OpenAITimeout = timeout

	return cfg, nil
}
