// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"
	"time"

	"github.com/catalograph/catalograph/internal/models"
)

// Health reports overall service health: whether the catalog snapshot
// is loaded, its size, and process uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	loaded := h.engine != nil && h.engine.Snapshot().Len() > 0

	status := "healthy"
	if !loaded {
		status = "degraded"
	}

	var total int
	if h.engine != nil {
		total = h.engine.Snapshot().Len()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:        status,
			Version:       Version,
			CatalogLoaded: loaded,
			TotalRecords:  total,
			LoadedAt:      h.loadedAt,
			Uptime:        time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive is the liveness probe. It answers 200 whenever the process
// can serve HTTP at all.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe. The service is ready once the
// catalog snapshot holds at least one record.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil || h.engine.Snapshot().Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Catalog not loaded", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// CatalogStats summarizes the loaded snapshot.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	stats := h.engine.Stats()
	stats.DatasetPath = h.cfg.Dataset.Path
	respondSuccess(w, stats, stats.TotalRecords, started)
}
