// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"testing"

	"github.com/catalograph/catalograph/internal/catalog"
)

func TestGenreCounts(t *testing.T) {
	e := newTestEngine(t)

	got := e.GenreCounts()
	counts := make(map[string]int, len(got))
	for _, row := range got {
		counts[row.Genre] = row.Count
	}

	if counts["Dramas"] != 2 || counts["Documentaries"] != 2 {
		t.Errorf("expanded genre counts wrong: %v", counts)
	}
	if counts["TV Dramas"] != 1 || counts["Cult Movies"] != 1 {
		t.Errorf("single-tag genres wrong: %v", counts)
	}

	t.Run("sorted by count then name", func(t *testing.T) {
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Count < cur.Count {
				t.Fatalf("not sorted by count at %d: %v", i, got)
			}
			if prev.Count == cur.Count && prev.Genre > cur.Genre {
				t.Fatalf("tie not sorted by name at %d: %v", i, got)
			}
		}
	})
}

func TestDocumentaryMovies(t *testing.T) {
	e := newTestEngine(t)

	got := e.DocumentaryMovies()
	ids := make(map[string]bool, len(got))
	for _, r := range got {
		ids[r.ShowID] = true
	}

	t.Run("suffix match included", func(t *testing.T) {
		// s1 has listed_in "Dramas, Documentaries".
		if !ids["s1"] {
			t.Errorf("record ending in Documentaries missing: %v", ids)
		}
	})

	t.Run("substring-anywhere excluded", func(t *testing.T) {
		// s2 has listed_in "Documentaries, Dramas" and must NOT match.
		if ids["s2"] {
			t.Errorf("suffix filter matched a mid-string occurrence: %v", ids)
		}
	})

	if len(got) != 1 {
		t.Errorf("expected exactly 1 documentary record, got %d", len(got))
	}
}

func TestByDirector(t *testing.T) {
	e := newTestEngine(t)

	t.Run("expanded exact match", func(t *testing.T) {
		got := e.ByDirector("Jane Doe")
		if len(got) != 2 || got[0].ShowID != "s1" || got[1].ShowID != "s2" {
			t.Errorf("ByDirector(Jane Doe) = %v", got)
		}
	})

	t.Run("second atom matches", func(t *testing.T) {
		got := e.ByDirector("John Roe")
		if len(got) != 1 || got[0].ShowID != "s2" {
			t.Errorf("ByDirector(John Roe) = %v", got)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if got := e.ByDirector("jane doe"); got != nil {
			t.Errorf("lowercase name must not match: %v", got)
		}
	})

	t.Run("no partial atom match", func(t *testing.T) {
		if got := e.ByDirector("Jane"); got != nil {
			t.Errorf("partial name must not match an atom: %v", got)
		}
	})
}

func TestByCastMember(t *testing.T) {
	e := newTestEngine(t)

	t.Run("substring match on raw field", func(t *testing.T) {
		got := e.ByCastMember("Actor A", 0)
		if len(got) != 2 || got[0].ShowID != "s1" || got[1].ShowID != "s4" {
			t.Errorf("ByCastMember(Actor A) = %v", got)
		}
	})

	t.Run("release year lower bound", func(t *testing.T) {
		got := e.ByCastMember("Actor B", 2015)
		if len(got) != 1 || got[0].ShowID != "s1" {
			t.Errorf("ByCastMember(Actor B, 2015) = %v", got)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if got := e.ByCastMember("actor a", 0); got != nil {
			t.Errorf("lowercase name must not match: %v", got)
		}
	})
}

func TestClassifyByKeywords(t *testing.T) {
	t.Run("spec examples", func(t *testing.T) {
		records := []catalog.Record{
			{ShowID: "bad", Description: "A violent killing"},
			{ShowID: "good", Description: "A happy story"},
		}
		e := NewEngine(catalog.NewSnapshot(records))

		got := e.ClassifyByKeywords(nil, "", "")
		if len(got) != 2 {
			t.Fatalf("expected both buckets, got %v", got)
		}
		if got[0].Label != DefaultFlaggedLabel || got[0].Count != 1 {
			t.Errorf("flagged bucket = %v", got[0])
		}
		if got[1].Label != DefaultCleanLabel || got[1].Count != 1 {
			t.Errorf("clean bucket = %v", got[1])
		}
	})

	t.Run("case insensitive OR across keywords", func(t *testing.T) {
		records := []catalog.Record{
			{ShowID: "a", Description: "KILLer instincts"},
			{ShowID: "b", Description: "Senseless Violence"},
			{ShowID: "c", Description: "A calm afternoon"},
		}
		e := NewEngine(catalog.NewSnapshot(records))
		got := e.ClassifyByKeywords([]string{"kill", "violence"}, "flagged", "clean")
		if got[0].Count != 2 || got[1].Count != 1 {
			t.Errorf("buckets = %v", got)
		}
	})

	t.Run("buckets partition the snapshot", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.ClassifyByKeywords(nil, "", "")
		if got[0].Count+got[1].Count != e.Snapshot().Len() {
			t.Errorf("buckets %v do not sum to %d", got, e.Snapshot().Len())
		}
	})

	t.Run("custom labels", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.ClassifyByKeywords([]string{"history"}, "historic", "other")
		if got[0].Label != "historic" || got[0].Count != 1 {
			t.Errorf("custom keyword bucket = %v", got[0])
		}
	})
}

func TestStats(t *testing.T) {
	e := newTestEngine(t)

	stats := e.Stats()
	if stats.TotalRecords != 5 || stats.Movies != 3 || stats.TVShows != 2 {
		t.Errorf("content mix = %+v", stats)
	}
	if stats.DistinctCountries != 2 {
		t.Errorf("DistinctCountries = %d, want 2", stats.DistinctCountries)
	}
	if stats.DistinctGenres != 5 {
		t.Errorf("DistinctGenres = %d, want 5", stats.DistinctGenres)
	}
	if stats.EarliestRelease != 2014 || stats.LatestRelease != 2022 {
		t.Errorf("release range = %d..%d", stats.EarliestRelease, stats.LatestRelease)
	}
}
