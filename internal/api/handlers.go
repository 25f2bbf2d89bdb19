// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"time"

	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/reports"
)

// Version is the build version, overridable at link time with
// -ldflags "-X github.com/catalograph/catalograph/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: health and catalog stats endpoints
//   - handlers_reports.go: one endpoint per report
type Handler struct {
	engine    *reports.Engine
	cfg       *config.Config
	startTime time.Time
	loadedAt  time.Time
}

// NewHandler creates an API handler serving the given engine. loadedAt
// is when the catalog snapshot was built.
func NewHandler(engine *reports.Engine, cfg *config.Config, loadedAt time.Time) *Handler {
	return &Handler{
		engine:    engine,
		cfg:       cfg,
		startTime: time.Now(),
		loadedAt:  loadedAt,
	}
}
