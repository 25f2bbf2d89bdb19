// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/models"
)

// Stats summarizes the loaded snapshot: content mix, distinct expanded
// countries and genres, and the release-year range.
func (e *Engine) Stats() models.CatalogStats {
	defer observe("stats")()

	stats := models.CatalogStats{TotalRecords: e.snap.Len()}

	countries := make(map[string]struct{})
	genres := make(map[string]struct{})
	for _, r := range e.records() {
		switch r.ContentType {
		case catalog.TypeMovie:
			stats.Movies++
		case catalog.TypeTVShow:
			stats.TVShows++
		}
		for _, c := range r.Countries() {
			countries[c] = struct{}{}
		}
		for _, g := range r.Genres() {
			genres[g] = struct{}{}
		}
		if stats.EarliestRelease == 0 || r.ReleaseYear < stats.EarliestRelease {
			stats.EarliestRelease = r.ReleaseYear
		}
		if r.ReleaseYear > stats.LatestRelease {
			stats.LatestRelease = r.ReleaseYear
		}
	}
	stats.DistinctCountries = len(countries)
	stats.DistinctGenres = len(genres)
	return stats
}
