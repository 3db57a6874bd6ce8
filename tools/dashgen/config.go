package main

import "errors"

// KnownMetrics is the set of metric names exported by the AliExpress
// client plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// API call metrics.
	"aliexpress_api_calls_total":                  true,
	"aliexpress_api_call_duration_seconds_bucket": true,
	"aliexpress_api_call_duration_seconds_count":  true,
	"aliexpress_api_call_duration_seconds_sum":    true,
	"aliexpress_api_platform_errors_total":        true,

	// Recording rules.
	"aliexpress:api_calls:rate5m":            true,
	"aliexpress:api_failures:rate5m":         true,
	"aliexpress:api_network_failures:rate5m": true,
	"aliexpress:platform_errors:rate5m":      true,
	"aliexpress:api_call_duration:p95_5m":    true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
