// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Package config loads and validates the Catalograph configuration via
// Koanf v2 layered sources: built-in defaults, an optional YAML file,
// and environment variables (highest priority).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the Catalograph server.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Reports  ReportsConfig  `koanf:"reports"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the catalog source.
type DatasetConfig struct {
	// Path is the catalog CSV file loaded once at startup.
	Path string `koanf:"path" validate:"required"`
}

// ReportsConfig carries the caller-surfaced report defaults.
type ReportsConfig struct {
	// SeasonThreshold is the default strict lower bound for the
	// TV-shows-by-seasons report.
	SeasonThreshold int `koanf:"season_threshold" validate:"gte=0"`

	// RecencyWindowYears is the default lookback for the recently-added
	// report.
	RecencyWindowYears int `koanf:"recency_window_years" validate:"gte=0"`

	// CountryLimit and ActorLimit bound the top-N reports.
	CountryLimit int `koanf:"country_limit" validate:"gt=0,lte=1000"`
	ActorLimit   int `koanf:"actor_limit" validate:"gt=0,lte=1000"`

	// Keywords drive the description classification report; FlaggedLabel
	// and CleanLabel name its two buckets.
	Keywords     []string `koanf:"keywords" validate:"min=1"`
	FlaggedLabel string   `koanf:"flagged_label" validate:"required"`
	CleanLabel   string   `koanf:"clean_label" validate:"required"`

	// ParsePolicy is "skip" (drop records with unparseable
	// duration/date_added, the permissive source behavior) or "fail"
	// (abort the report with the typed error).
	ParsePolicy string `koanf:"parse_policy" validate:"oneof=skip fail"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"gt=0,lte=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// SecurityConfig configures the HTTP hardening middleware.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gt=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
