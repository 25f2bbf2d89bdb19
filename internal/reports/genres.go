// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"sort"
	"strings"

	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/models"
)

// documentariesSuffix is the literal suffix the documentary filter
// matches against the raw listed_in field.
const documentariesSuffix = "Documentaries"

// GenreCounts reports how many catalog entries carry each atomic genre
// tag from the expanded listed_in field. Rows are sorted by count
// descending, then genre ascending, for determinism.
func (e *Engine) GenreCounts() []models.GenreCount {
	defer observe("genre_counts")()

	counts := make(map[string]int)
	for _, r := range e.records() {
		for _, genre := range r.Genres() {
			counts[genre]++
		}
	}

	out := make([]models.GenreCount, 0, len(counts))
	for genre, n := range counts {
		out = append(out, models.GenreCount{Genre: genre, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// DocumentaryMovies returns records whose raw listed_in field ends with
// the literal suffix "Documentaries", in snapshot order.
//
// Compatibility quirk, preserved deliberately: this is a suffix match,
// not substring-anywhere, so "Dramas, Documentaries" is included while
// "Documentaries, Dramas" is not. The expanded-genre reports treat both
// identically; this one replicates the source filter exactly.
func (e *Engine) DocumentaryMovies() []catalog.Record {
	defer observe("documentary_movies")()

	var out []catalog.Record
	for _, r := range e.records() {
		if strings.HasSuffix(r.ListedIn, documentariesSuffix) {
			out = append(out, r)
		}
	}
	return out
}
