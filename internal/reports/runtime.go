// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"sort"

	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/models"
)

// LongestMovies returns every movie ordered by parsed runtime
// descending. The result is the full sorted order; truncation is the
// caller's concern. Ties break by title ascending for determinism.
//
// Records whose duration does not start with an integer are skipped with
// a warning under SkipInvalid, or abort the report with a
// *catalog.DurationParseError under FailFast.
func (e *Engine) LongestMovies() ([]models.MovieRuntime, error) {
	defer observe("longest_movies")()

	var out []models.MovieRuntime
	for _, r := range e.records() {
		if !r.IsMovie() {
			continue
		}
		minutes, err := catalog.DurationValue(r)
		if err != nil {
			if e.policy == FailFast {
				return nil, err
			}
			skipParseFailure("duration", err)
			continue
		}
		out = append(out, models.MovieRuntime{ShowID: r.ShowID, Title: r.Title, Minutes: minutes})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

// TVShowsMinSeasons returns TV shows with strictly more seasons than the
// threshold, in snapshot order. threshold <= 0 falls back to
// DefaultSeasonThreshold. Parse failures follow the engine policy as in
// LongestMovies.
func (e *Engine) TVShowsMinSeasons(threshold int) ([]catalog.Record, error) {
	defer observe("tv_shows_min_seasons")()

	if threshold <= 0 {
		threshold = DefaultSeasonThreshold
	}

	var out []catalog.Record
	for _, r := range e.records() {
		if !r.IsTVShow() {
			continue
		}
		seasons, err := catalog.DurationValue(r)
		if err != nil {
			if e.policy == FailFast {
				return nil, err
			}
			skipParseFailure("duration", err)
			continue
		}
		if seasons > threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

// RecentlyAdded returns records whose date_added falls within the last
// windowYears years of the engine clock, in snapshot order. windowYears
// <= 0 falls back to DefaultRecencyWindowYears.
//
// Records with a null or unparseable date_added are excluded under
// SkipInvalid, or abort the report with a *catalog.DateParseError under
// FailFast. A null date is never an error under SkipInvalid: it simply
// contributes nothing.
func (e *Engine) RecentlyAdded(windowYears int) ([]catalog.Record, error) {
	defer observe("recently_added")()

	if windowYears <= 0 {
		windowYears = DefaultRecencyWindowYears
	}
	cutoff := e.now().AddDate(-windowYears, 0, 0)

	var out []catalog.Record
	for _, r := range e.records() {
		added, err := catalog.DateAdded(r)
		if err != nil {
			if e.policy == FailFast && r.DateAdded != "" {
				return nil, err
			}
			if r.DateAdded != "" {
				skipParseFailure("date", err)
			}
			continue
		}
		if !added.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}
