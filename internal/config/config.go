package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fiveverst/fiveverst-go/client"
)

// Config holds settings for tools built on the API client.
// Environment variables are parsed from the FIVEVERST_ prefix.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://my.5verst.ru/"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"60s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// New creates a Config from environment variables, e.g.
// FIVEVERST_BASE_URL, FIVEVERST_HTTP_TIMEOUT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FIVEVERST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate rejects values the client cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid BASE_URL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid BASE_URL %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid HTTP_TIMEOUT %s: must be > 0", c.HTTPTimeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ClientOptions translates the config into client construction options.
func (c *Config) ClientOptions() []client.Option {
	return []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithDebugLogging(c.Debug),
	}
}
