// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/catalograph/catalograph/internal/catalog"
)

// Request parameter structs, validated with go-playground/validator.

type byReleaseYearRequest struct {
	Year int `validate:"gte=1800,lte=3000"`
}

type topNRequest struct {
	Limit int `validate:"gte=0,lte=1000"`
}

type recentlyAddedRequest struct {
	WindowYears int `validate:"gte=0,lte=500"`
}

type minSeasonsRequest struct {
	Threshold int `validate:"gte=0,lte=100"`
}

// CountByType handles GET /api/v1/reports/count-by-type.
func (h *Handler) CountByType(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows := h.engine.CountByType()
	respondSuccess(w, rows, len(rows), started)
}

// TopRatingByType handles GET /api/v1/reports/top-rating-by-type.
func (h *Handler) TopRatingByType(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows := h.engine.TopRatingByType()
	respondSuccess(w, rows, len(rows), started)
}

// ByReleaseYear handles GET /api/v1/reports/by-release-year?year=.
func (h *Handler) ByReleaseYear(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	year, ok := requireIntParam(r, "year")
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "year must be an integer", nil)
		return
	}
	if apiErr := validateRequest(&byReleaseYearRequest{Year: year}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	rows := h.engine.FilterByReleaseYear(year)
	respondSuccess(w, rows, len(rows), started)
}

// TopCountries handles GET /api/v1/reports/top-countries?limit=.
func (h *Handler) TopCountries(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	limit := getIntParam(r, "limit", h.cfg.Reports.CountryLimit)
	if apiErr := validateRequest(&topNRequest{Limit: limit}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	rows := h.engine.TopCountriesByContent(limit)
	respondSuccess(w, rows, len(rows), started)
}

// LongestMovies handles GET /api/v1/reports/longest-movies?limit=.
func (h *Handler) LongestMovies(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows, err := h.engine.LongestMovies()
	if err != nil {
		respondReportError(w, err)
		return
	}
	if limit := getIntParam(r, "limit", 0); limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	respondSuccess(w, rows, len(rows), started)
}

// RecentlyAdded handles GET /api/v1/reports/recently-added?window_years=.
func (h *Handler) RecentlyAdded(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	window := getIntParam(r, "window_years", h.cfg.Reports.RecencyWindowYears)
	if apiErr := validateRequest(&recentlyAddedRequest{WindowYears: window}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	rows, err := h.engine.RecentlyAdded(window)
	if err != nil {
		respondReportError(w, err)
		return
	}
	respondSuccess(w, rows, len(rows), started)
}

// ByDirector handles GET /api/v1/reports/by-director?name=.
func (h *Handler) ByDirector(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	name, ok := requireStringParam(r, "name")
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "name is required", nil)
		return
	}
	rows := h.engine.ByDirector(name)
	respondSuccess(w, rows, len(rows), started)
}

// TVMinSeasons handles GET /api/v1/reports/tv-min-seasons?threshold=.
func (h *Handler) TVMinSeasons(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	threshold := getIntParam(r, "threshold", h.cfg.Reports.SeasonThreshold)
	if apiErr := validateRequest(&minSeasonsRequest{Threshold: threshold}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	rows, err := h.engine.TVShowsMinSeasons(threshold)
	if err != nil {
		respondReportError(w, err)
		return
	}
	respondSuccess(w, rows, len(rows), started)
}

// GenreCounts handles GET /api/v1/reports/genre-counts.
func (h *Handler) GenreCounts(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows := h.engine.GenreCounts()
	respondSuccess(w, rows, len(rows), started)
}

// YearShare handles GET /api/v1/reports/year-share?country=.
func (h *Handler) YearShare(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	country, ok := requireStringParam(r, "country")
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "country is required", nil)
		return
	}
	rows := h.engine.TopYearsByCountryShare(country)
	respondSuccess(w, rows, len(rows), started)
}

// Documentaries handles GET /api/v1/reports/documentaries.
func (h *Handler) Documentaries(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows := h.engine.DocumentaryMovies()
	respondSuccess(w, rows, len(rows), started)
}

// MissingDirector handles GET /api/v1/reports/missing-director.
func (h *Handler) MissingDirector(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows := h.engine.MissingDirector()
	respondSuccess(w, rows, len(rows), started)
}

// ByCast handles GET /api/v1/reports/by-cast?name=&since_year=.
func (h *Handler) ByCast(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	name, ok := requireStringParam(r, "name")
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "name is required", nil)
		return
	}
	sinceYear := getIntParam(r, "since_year", 0)
	rows := h.engine.ByCastMember(name, sinceYear)
	respondSuccess(w, rows, len(rows), started)
}

// TopActors handles GET /api/v1/reports/top-actors?country=&limit=.
func (h *Handler) TopActors(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	country, ok := requireStringParam(r, "country")
	if !ok {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "country is required", nil)
		return
	}
	limit := getIntParam(r, "limit", h.cfg.Reports.ActorLimit)
	if apiErr := validateRequest(&topNRequest{Limit: limit}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	rows := h.engine.TopActorsByCountry(country, limit)
	respondSuccess(w, rows, len(rows), started)
}

// KeywordClassification handles
// GET /api/v1/reports/keyword-classification?keywords=&flagged_label=&clean_label=.
// All parameters are optional; the configured defaults apply.
func (h *Handler) KeywordClassification(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	keywords := parseCommaSeparated(r.URL.Query().Get("keywords"))
	if keywords == nil {
		keywords = h.cfg.Reports.Keywords
	}
	flagged := r.URL.Query().Get("flagged_label")
	if flagged == "" {
		flagged = h.cfg.Reports.FlaggedLabel
	}
	clean := r.URL.Query().Get("clean_label")
	if clean == "" {
		clean = h.cfg.Reports.CleanLabel
	}

	rows := h.engine.ClassifyByKeywords(keywords, flagged, clean)
	respondSuccess(w, rows, len(rows), started)
}

// respondReportError maps report errors to HTTP responses. Typed
// per-record parse errors surface as 422 under the fail-fast policy;
// anything else is a 500.
func respondReportError(w http.ResponseWriter, err error) {
	var durErr *catalog.DurationParseError
	var dateErr *catalog.DateParseError
	if errors.As(err, &durErr) || errors.As(err, &dateErr) {
		respondError(w, http.StatusUnprocessableEntity, "PARSE_ERROR", err.Error(), err)
		return
	}
	respondError(w, http.StatusInternalServerError, "REPORT_FAILED", "Report execution failed", err)
}
