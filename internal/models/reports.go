// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package models

// TypeCount is one row of the content-mix report: how many catalog
// entries exist per content type.
type TypeCount struct {
	ContentType string `json:"type"`
	Count       int    `json:"count"`
}

// TypeRatingCount is one row of the top-rating-per-type report. Rank
// follows standard RANK semantics, so ties at the maximum count all
// appear with Rank 1.
type TypeRatingCount struct {
	ContentType string `json:"type"`
	Rating      string `json:"rating"`
	Count       int    `json:"count"`
	Rank        int    `json:"rank"`
}

// CountryCount is one row of the top-countries report, counting catalog
// entries per atomic country value.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// MovieRuntime pairs a movie with its parsed runtime in minutes.
type MovieRuntime struct {
	ShowID  string `json:"show_id"`
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
}

// GenreCount is one row of the genre-distribution report, counting
// catalog entries per atomic listed_in tag.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// YearShare is one row of the per-country release-year share report.
// Percent is the share of the filtered country's titles released in that
// year, rounded to two decimals.
type YearShare struct {
	ReleaseYear int     `json:"release_year"`
	Count       int     `json:"count"`
	Percent     float64 `json:"percent"`
}

// ActorCount is one row of the top-actors report, counting appearances
// per atomic cast member.
type ActorCount struct {
	Actor string `json:"actor"`
	Count int    `json:"count"`
}

// KeywordBucket is one row of the keyword classification report: the
// label assigned by description keyword matching and the number of
// records that fell into it.
type KeywordBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CatalogStats summarizes the loaded snapshot for the stats endpoint.
type CatalogStats struct {
	TotalRecords      int    `json:"total_records"`
	Movies            int    `json:"movies"`
	TVShows           int    `json:"tv_shows"`
	DistinctCountries int    `json:"distinct_countries"`
	DistinctGenres    int    `json:"distinct_genres"`
	EarliestRelease   int    `json:"earliest_release_year,omitempty"`
	LatestRelease     int    `json:"latest_release_year,omitempty"`
	DatasetPath       string `json:"dataset_path,omitempty"`
}
