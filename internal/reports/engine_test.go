// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"reflect"
	"testing"
	"time"

	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/models"
)

// fixtureRecords is a small hand-built catalog exercising every quirk the
// reports care about: multi-valued fields, null fields, both duration
// units, rating ties, and malformed free-text fields.
func fixtureRecords() []catalog.Record {
	return []catalog.Record{
		{
			ShowID: "s1", ContentType: catalog.TypeMovie, Title: "Long Epic",
			Director: "Jane Doe", Cast: "Actor A, Actor B", Country: "India, United States",
			DateAdded: "September 25, 2021", ReleaseYear: 2020, Rating: "PG-13",
			Duration: "190 min", ListedIn: "Dramas, Documentaries",
			Description: "A sweeping tale of history.",
		},
		{
			ShowID: "s2", ContentType: catalog.TypeMovie, Title: "Short Film",
			Director: "Jane Doe, John Roe", Cast: "Actor B", Country: "India",
			DateAdded: "January 1, 2015", ReleaseYear: 2014, Rating: "PG-13",
			Duration: "45 min", ListedIn: "Documentaries, Dramas",
			Description: "A violent killing shakes a town.",
		},
		{
			ShowID: "s3", ContentType: catalog.TypeTVShow, Title: "Big Series",
			Director: "", Cast: "Actor C, Actor D", Country: "India",
			DateAdded: "March 10, 2023", ReleaseYear: 2022, Rating: "TV-MA",
			Duration: "5 Seasons", ListedIn: "TV Dramas",
			Description: "A happy story.",
		},
		{
			ShowID: "s4", ContentType: catalog.TypeTVShow, Title: "Small Series",
			Director: "", Cast: "Actor A", Country: "United States",
			DateAdded: "", ReleaseYear: 2020, Rating: "TV-MA",
			Duration: "1 Season", ListedIn: "TV Comedies",
			Description: "Nothing to kill the mood here.",
		},
		{
			ShowID: "s5", ContentType: catalog.TypeMovie, Title: "Mystery Reel",
			Director: "Solo Director", Cast: "", Country: "",
			DateAdded: "not a date", ReleaseYear: 2020, Rating: "",
			Duration: "unrated", ListedIn: "Cult Movies",
			Description: "Quiet and calm.",
		},
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(catalog.NewSnapshot(fixtureRecords()), opts...)
}

func TestCountByType(t *testing.T) {
	e := newTestEngine(t)

	got := e.CountByType()
	want := []models.TypeCount{
		{ContentType: catalog.TypeMovie, Count: 3},
		{ContentType: catalog.TypeTVShow, Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByType() = %v, want %v", got, want)
	}

	t.Run("partition completeness", func(t *testing.T) {
		total := 0
		for _, row := range got {
			total += row.Count
		}
		if total != e.Snapshot().Len() {
			t.Errorf("type counts sum to %d, want %d", total, e.Snapshot().Len())
		}
	})
}

func TestTopRatingByType(t *testing.T) {
	t.Run("single winner per type", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.TopRatingByType()

		perType := make(map[string][]models.TypeRatingCount)
		for _, row := range got {
			if row.Rank != 1 {
				t.Errorf("unexpected rank %d in %v", row.Rank, row)
			}
			perType[row.ContentType] = append(perType[row.ContentType], row)
		}
		if rows := perType[catalog.TypeMovie]; len(rows) != 1 || rows[0].Rating != "PG-13" || rows[0].Count != 2 {
			t.Errorf("movie winner = %v", rows)
		}
		if rows := perType[catalog.TypeTVShow]; len(rows) != 1 || rows[0].Rating != "TV-MA" || rows[0].Count != 2 {
			t.Errorf("tv winner = %v", rows)
		}
	})

	t.Run("ties at the maximum are all retained", func(t *testing.T) {
		records := []catalog.Record{
			{ShowID: "a", ContentType: catalog.TypeMovie, Rating: "PG"},
			{ShowID: "b", ContentType: catalog.TypeMovie, Rating: "R"},
		}
		e := NewEngine(catalog.NewSnapshot(records))
		got := e.TopRatingByType()
		if len(got) != 2 {
			t.Fatalf("expected both tied ratings, got %v", got)
		}
		for _, row := range got {
			if row.Rank != 1 || row.Count != 1 {
				t.Errorf("tied row = %v", row)
			}
		}
	})
}

func TestFilterByReleaseYear(t *testing.T) {
	e := newTestEngine(t)

	got := e.FilterByReleaseYear(2020)
	if len(got) != 3 {
		t.Fatalf("expected 3 records for 2020, got %d", len(got))
	}
	// Snapshot order preserved.
	if got[0].ShowID != "s1" || got[1].ShowID != "s4" || got[2].ShowID != "s5" {
		t.Errorf("unexpected order: %s %s %s", got[0].ShowID, got[1].ShowID, got[2].ShowID)
	}

	if got := e.FilterByReleaseYear(1900); got != nil {
		t.Errorf("expected no records for 1900, got %v", got)
	}
}

func TestMissingDirector(t *testing.T) {
	e := newTestEngine(t)

	got := e.MissingDirector()
	if len(got) != 2 || got[0].ShowID != "s3" || got[1].ShowID != "s4" {
		t.Errorf("MissingDirector() = %v", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Loading once and running reports repeatedly must be bit-identical:
	// no hidden mutation anywhere in the engine.
	e := newTestEngine(t, WithClock(func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))

	first := e.CountByType()
	second := e.CountByType()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("CountByType not deterministic: %v then %v", first, second)
	}

	g1 := e.GenreCounts()
	r1, err := e.RecentlyAdded(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g2 := e.GenreCounts()
	r2, err := e.RecentlyAdded(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(g1, g2) || !reflect.DeepEqual(r1, r2) {
		t.Error("repeated report runs diverged")
	}
}
