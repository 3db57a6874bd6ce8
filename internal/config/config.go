// Package config handles loading and validating the aectl configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/aliexpress/pkg/aliexpress"
	"github.com/donaldgifford/aliexpress/pkg/logger"
)

// Config is the top-level application configuration.
type Config struct {
	AliExpress AliExpressConfig `yaml:"aliexpress"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AliExpressConfig defines the platform credentials and gateways.
type AliExpressConfig struct {
	AppKey    string        `yaml:"app_key"`
	AppSecret string        `yaml:"app_secret"`
	Session   string        `yaml:"session"`
	SyncURL   string        `yaml:"sync_url"`
	RestURL   string        `yaml:"rest_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Credentials returns the client credentials.
func (a *AliExpressConfig) Credentials() aliexpress.Credentials {
	return aliexpress.Credentials{
		AppKey:    a.AppKey,
		AppSecret: a.AppSecret,
		Session:   a.Session,
	}
}

// Options returns the client options for the configured gateways and
// timeout, logging through l.
func (a *AliExpressConfig) Options(l *slog.Logger) []aliexpress.Option {
	return []aliexpress.Option{
		aliexpress.WithSyncURL(a.SyncURL),
		aliexpress.WithRestURL(a.RestURL),
		aliexpress.WithHTTPClient(&http.Client{Timeout: a.Timeout}),
		aliexpress.WithLogger(l),
	}
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := Finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses a YAML config file with environment variable substitution but
// neither applies defaults nor validates, so that callers can overlay flags
// before calling Finalize.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// Finalize applies defaults and validates cfg.
func Finalize(cfg *Config) error {
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyAliExpressDefaults(&cfg.AliExpress)
	applyLoggingDefaults(&cfg.Logging)
}

func applyAliExpressDefaults(a *AliExpressConfig) {
	if a.SyncURL == "" {
		a.SyncURL = aliexpress.DefaultSyncURL
	}
	if a.RestURL == "" {
		a.RestURL = aliexpress.DefaultRestURL
	}
	if a.Timeout == 0 {
		a.Timeout = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = logger.FormatText
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.AliExpress.AppKey == "" {
		errs = append(errs, fmt.Errorf("aliexpress.app_key is required"))
	}
	if cfg.AliExpress.AppSecret == "" {
		errs = append(errs, fmt.Errorf("aliexpress.app_secret is required"))
	}
	if cfg.AliExpress.Timeout < 0 {
		errs = append(errs, fmt.Errorf("aliexpress.timeout must not be negative"))
	}
	if err := validateURL("aliexpress.sync_url", cfg.AliExpress.SyncURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("aliexpress.rest_url", cfg.AliExpress.RestURL); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf(
			"logging.level must be one of: debug, info, warn, error (got %q)",
			cfg.Logging.Level,
		))
	}
	switch cfg.Logging.Format {
	case logger.FormatText, logger.FormatJSON, logger.FormatPretty:
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, pretty (got %q)",
			cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL (got %q)", field, raw)
	}
	return nil
}
