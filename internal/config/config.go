package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile     string `env:"LOG_FILE"`

	// Mail provider configuration. Deliberately not validated here: a missing
	// value is a per-request configuration error surfaced as a 500, not a
	// startup failure.
	MailAPIKey     string `env:"MAIL_API_KEY"`
	MailAPIURL     string `env:"MAIL_API_URL" envDefault:"https://api.resend.com"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
}

// MailSettings groups the provider values the contact handler needs per send.
type MailSettings struct {
	APIKey    string
	Endpoint  string
	Recipient string
}

// Load loads the configuration from environment variables and a .env file
func Load() (*Config, error) {
	// Load .env file if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}

// MailSettings returns the provider settings required to send mail, or an
// error naming the first missing value. The error is for logs only and must
// never reach the caller verbatim.
func (c *Config) MailSettings() (*MailSettings, error) {
	if c.MailAPIKey == "" {
		return nil, fmt.Errorf("MAIL_API_KEY environment variable is required but not set")
	}
	if c.RecipientEmail == "" {
		return nil, fmt.Errorf("RECIPIENT_EMAIL environment variable is required but not set")
	}

	return &MailSettings{
		APIKey:    c.MailAPIKey,
		Endpoint:  c.MailAPIURL,
		Recipient: c.RecipientEmail,
	}, nil
}
