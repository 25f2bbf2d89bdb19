// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (stand-in for t.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray config.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8480 {
		t.Errorf("Server.Port = %d, want 8480", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Reports.SeasonThreshold != 3 {
		t.Errorf("Reports.SeasonThreshold = %d, want 3", cfg.Reports.SeasonThreshold)
	}
	if cfg.Reports.ParsePolicy != "skip" {
		t.Errorf("Reports.ParsePolicy = %q, want skip", cfg.Reports.ParsePolicy)
	}
	if want := []string{"kill", "violence"}; !reflect.DeepEqual(cfg.Reports.Keywords, want) {
		t.Errorf("Reports.Keywords = %v, want %v", cfg.Reports.Keywords, want)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("CATALOG_PATH", "/tmp/shows.csv")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_PARSE_POLICY", "fail")
	t.Setenv("REPORT_KEYWORDS", "murder, revenge")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Dataset.Path != "/tmp/shows.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Reports.ParsePolicy != "fail" {
		t.Errorf("Reports.ParsePolicy = %q, want fail", cfg.Reports.ParsePolicy)
	}
	if want := []string{"murder", "revenge"}; !reflect.DeepEqual(cfg.Reports.Keywords, want) {
		t.Errorf("Reports.Keywords = %v, want %v", cfg.Reports.Keywords, want)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := `
dataset:
  path: /srv/catalog.csv
server:
  port: 8888
reports:
  season_threshold: 7
  keywords:
    - war
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Dataset.Path != "/srv/catalog.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Reports.SeasonThreshold != 7 {
		t.Errorf("Reports.SeasonThreshold = %d, want 7", cfg.Reports.SeasonThreshold)
	}
	if want := []string{"war"}; !reflect.DeepEqual(cfg.Reports.Keywords, want) {
		t.Errorf("Reports.Keywords = %v, want %v", cfg.Reports.Keywords, want)
	}

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7000")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Server.Port != 7000 {
			t.Errorf("Server.Port = %d, want 7000", cfg.Server.Port)
		}
	})
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dataset path", func(c *Config) { c.Dataset.Path = "" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown parse policy", func(c *Config) { c.Reports.ParsePolicy = "maybe" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"no keywords", func(c *Config) { c.Reports.Keywords = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
