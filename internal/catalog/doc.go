// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package catalog defines the core data model for Catalograph: the catalog
Record, the immutable Snapshot produced by the dataset loader, and the
shared parsing primitives every report builds on.

Key Components:

  - Record: one catalog entry (movie or TV show) in the denormalized
    schema the dataset ships with
  - Snapshot: an immutable ordered collection of Records; built once at
    load time, never mutated afterwards
  - SplitMulti: the single shared primitive for expanding comma-separated
    multi-value fields (director, cast, country, listed_in) into trimmed
    atomic values
  - DurationValue / DateAdded: per-record parsers for the free-text
    duration and date_added fields, with typed per-record errors

Design Notes:

The duration field encodes different units per content type ("90 min" for
movies, "3 Seasons" for TV shows), so any numeric comparison on it must
branch on ContentType first. Multi-value expansion lives here precisely so
that null and whitespace handling cannot silently diverge between reports.
*/
package catalog
