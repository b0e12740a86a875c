package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/mail"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Mail     MailConfig
	Relay    RelayConfig
	Site     SiteConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// OTelEndpoint enables trace export when set.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

type ServerConfig struct {
	Port            string `env:"PORT" envDefault:"8080"`
	Host            string `env:"HOST" envDefault:"0.0.0.0"`
	ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"15"`
	WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
}

// MailConfig configures the transactional email provider.
type MailConfig struct {
	Provider        string `env:"MAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey    string `env:"RESEND_API_KEY"`
	ResendBaseURL   string `env:"RESEND_BASE_URL"`
	From            string `env:"MAIL_FROM" envDefault:"Genesis Examinations <onboarding@resend.dev>"`
	OperationsEmail string `env:"OPERATIONS_EMAIL" envDefault:"info@genesisexams.ss"`
}

// RelayConfig configures both ends of the order relay: the keys the relay
// accepts and the URL the order form posts to.
type RelayConfig struct {
	URL     string   `env:"RELAY_URL"`
	APIKeys []string `env:"RELAY_API_KEYS" envSeparator:","`
	Timeout int      `env:"RELAY_TIMEOUT" envDefault:"30"`
}

type SiteConfig struct {
	BaseURL string `env:"SITE_URL" envDefault:"https://genesisexaminations.com"`
}

// Load reads configuration from environment variables, after merging a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Relay.URL == "" {
		cfg.Relay.URL = fmt.Sprintf("http://127.0.0.1:%s/functions/v1/send-order-email", cfg.Server.Port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Mail.Provider {
	case "resend", "log":
	default:
		return fmt.Errorf("invalid mail provider: %s (must be resend or log)", c.Mail.Provider)
	}

	if _, err := mail.ParseAddress(c.Mail.From); err != nil {
		return fmt.Errorf("invalid MAIL_FROM: %w", err)
	}
	if _, err := mail.ParseAddress(c.Mail.OperationsEmail); err != nil {
		return fmt.Errorf("invalid OPERATIONS_EMAIL: %w", err)
	}

	// A missing RESEND_API_KEY is not fatal: the relay reports it per request.

	return nil
}
