// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"math"
	"sort"

	"github.com/catalograph/catalograph/internal/models"
)

// TopCountriesByContent reports the countries with the most catalog
// entries, counting each atomic country value of the expanded
// multi-valued field. A record listing "India, United States" counts
// once for each country. Null/empty country fields contribute nothing.
//
// limit <= 0 falls back to DefaultCountryLimit. Ties at the cutoff are
// resolved deterministically: count descending, then country name
// ascending.
func (e *Engine) TopCountriesByContent(limit int) []models.CountryCount {
	defer observe("top_countries_by_content")()

	if limit <= 0 {
		limit = DefaultCountryLimit
	}

	counts := make(map[string]int)
	for _, r := range e.records() {
		for _, country := range r.Countries() {
			counts[country]++
		}
	}

	out := make([]models.CountryCount, 0, len(counts))
	for country, n := range counts {
		out = append(out, models.CountryCount{Country: country, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopYearsByCountryShare reports, for one country, the five release
// years holding the largest share of that country's titles. Percent is
// count/total for the filter, rounded to two decimals.
//
// Compatibility quirk, preserved deliberately: the country filter is
// RAW-FIELD equality on the unexpanded country column, so a record with
// country "India, United States" does NOT match "India" here even though
// the expanded reports would count it. Fixing this would change result
// semantics against the existing dataset.
func (e *Engine) TopYearsByCountryShare(country string) []models.YearShare {
	defer observe("top_years_by_country_share")()

	perYear := make(map[int]int)
	total := 0
	for _, r := range e.records() {
		if r.Country != country {
			continue
		}
		perYear[r.ReleaseYear]++
		total++
	}
	if total == 0 {
		return nil
	}

	out := make([]models.YearShare, 0, len(perYear))
	for year, n := range perYear {
		percent := math.Round(float64(n)/float64(total)*100*100) / 100
		out = append(out, models.YearShare{ReleaseYear: year, Count: n, Percent: percent})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].ReleaseYear < out[j].ReleaseYear
	})

	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// TopActorsByCountry reports the actors with the most appearances among
// titles of one country. The country filter uses the same raw-field
// equality quirk as TopYearsByCountryShare; the cast field is expanded
// into atomic actor names.
//
// limit <= 0 falls back to DefaultActorLimit. Ties break by actor name
// ascending.
func (e *Engine) TopActorsByCountry(country string, limit int) []models.ActorCount {
	defer observe("top_actors_by_country")()

	if limit <= 0 {
		limit = DefaultActorLimit
	}

	counts := make(map[string]int)
	for _, r := range e.records() {
		if r.Country != country {
			continue
		}
		for _, actor := range r.CastMembers() {
			counts[actor]++
		}
	}

	out := make([]models.ActorCount, 0, len(counts))
	for actor, n := range counts {
		out = append(out, models.ActorCount{Actor: actor, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Actor < out[j].Actor
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
