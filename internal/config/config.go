package config

import (
	"errors"
	"fmt"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Prompt modes.
const (
	PromptAlways = "always"
	PromptAuto   = "auto"
	PromptNever  = "never"
)

// Report formats.
const (
	ReportText = "text"
	ReportJSON = "json"
)

// Config holds the ambient settings of the survey, populated from environment
// variables. The city count, valid range and threshold are domain constants.
type Config struct {
	LogLevel  string
	LogFormat string

	PromptMode   string
	ReportFormat string

	// MetricsTextfile is the optional node_exporter textfile path written at exit.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "warn")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),
		PromptMode:      strings.ToLower(sharedcfg.EnvOrDefault("PROMPT_MODE", PromptAlways)),
		ReportFormat:    strings.ToLower(sharedcfg.EnvOrDefault("REPORT_FORMAT", ReportText)),
		MetricsTextfile: sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	switch cfg.PromptMode {
	case PromptAlways, PromptAuto, PromptNever:
	default:
		return nil, fmt.Errorf("invalid PROMPT_MODE %q", cfg.PromptMode)
	}
	switch cfg.ReportFormat {
	case ReportText, ReportJSON:
	default:
		return nil, fmt.Errorf("invalid REPORT_FORMAT %q", cfg.ReportFormat)
	}
	if strings.HasSuffix(cfg.MetricsTextfile, "/") {
		return nil, errors.New("METRICS_TEXTFILE must be a file path, not a directory")
	}

	return cfg, nil
}
