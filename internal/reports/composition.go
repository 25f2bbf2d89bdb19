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

// CountByType reports how many catalog entries exist per content type.
// The two types partition the snapshot, so the counts always sum to the
// total record count. Rows are sorted by type name for determinism.
func (e *Engine) CountByType() []models.TypeCount {
	defer observe("count_by_type")()

	counts := make(map[string]int)
	for _, r := range e.records() {
		counts[r.ContentType]++
	}

	out := make([]models.TypeCount, 0, len(counts))
	for contentType, n := range counts {
		out = append(out, models.TypeCount{ContentType: contentType, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContentType < out[j].ContentType })
	return out
}

// TopRatingByType reports the most common rating within each content
// type. Rank uses standard RANK semantics: when several ratings tie at
// the maximum count, all of them are returned with rank 1. Rows are
// ordered by type name, then rating, for determinism.
func (e *Engine) TopRatingByType() []models.TypeRatingCount {
	defer observe("top_rating_by_type")()

	type key struct{ contentType, rating string }
	counts := make(map[key]int)
	maxPerType := make(map[string]int)

	for _, r := range e.records() {
		k := key{r.ContentType, r.Rating}
		counts[k]++
		if counts[k] > maxPerType[r.ContentType] {
			maxPerType[r.ContentType] = counts[k]
		}
	}

	var out []models.TypeRatingCount
	for k, n := range counts {
		if n == maxPerType[k.contentType] {
			out = append(out, models.TypeRatingCount{
				ContentType: k.contentType,
				Rating:      k.rating,
				Count:       n,
				Rank:        1,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContentType != out[j].ContentType {
			return out[i].ContentType < out[j].ContentType
		}
		return out[i].Rating < out[j].Rating
	})
	return out
}

// FilterByReleaseYear returns all records released in exactly the given
// year, in snapshot order.
func (e *Engine) FilterByReleaseYear(year int) []catalog.Record {
	defer observe("filter_by_release_year")()

	var out []catalog.Record
	for _, r := range e.records() {
		if r.ReleaseYear == year {
			out = append(out, r)
		}
	}
	return out
}

// MissingDirector returns records whose director field is null/empty, in
// snapshot order.
func (e *Engine) MissingDirector() []catalog.Record {
	defer observe("missing_director")()

	var out []catalog.Record
	for _, r := range e.records() {
		if r.Director == "" {
			out = append(out, r)
		}
	}
	return out
}
