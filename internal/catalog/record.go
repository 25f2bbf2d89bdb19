// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package catalog

// Content types partitioning the catalog. Every record is exactly one of
// the two; the duration field encodes minutes for movies and seasons for
// TV shows.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// Record is one catalog entry in the denormalized source schema.
//
// ReleaseYear is the only field coerced at load time. Director, Cast,
// Country and DateAdded are nullable in the source data; an empty string
// models null. Director, Cast, Country and ListedIn are multi-valued
// comma-separated text and must be expanded via SplitMulti (or the
// convenience accessors below) before being treated as sets of atomic
// values.
type Record struct {
	ShowID      string `json:"show_id"`
	ContentType string `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director,omitempty"`
	Cast        string `json:"cast,omitempty"`
	Country     string `json:"country,omitempty"`
	DateAdded   string `json:"date_added,omitempty"`
	ReleaseYear int    `json:"release_year"`
	Rating      string `json:"rating,omitempty"`
	Duration    string `json:"duration"`
	ListedIn    string `json:"listed_in"`
	Description string `json:"description"`
}

// IsMovie reports whether the record is a movie.
func (r Record) IsMovie() bool { return r.ContentType == TypeMovie }

// IsTVShow reports whether the record is a TV show.
func (r Record) IsTVShow() bool { return r.ContentType == TypeTVShow }

// Directors returns the atomic director names, empty when the field is null.
func (r Record) Directors() []string { return SplitMulti(r.Director) }

// CastMembers returns the atomic actor names, empty when the field is null.
func (r Record) CastMembers() []string { return SplitMulti(r.Cast) }

// Countries returns the atomic country names, empty when the field is null.
func (r Record) Countries() []string { return SplitMulti(r.Country) }

// Genres returns the atomic genre/category tags from listed_in.
func (r Record) Genres() []string { return SplitMulti(r.ListedIn) }
