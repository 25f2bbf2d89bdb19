// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package reports implements the fixed catalog of report functions over an
immutable catalog snapshot.

Every report is a pure single-pass computation (plus a sort where ranking
is required) over the loaded snapshot: no report mutates shared state, no
report depends on another, and running the same report twice yields
identical results.

Report files:

  - composition.go: content mix, top rating per type, release-year
    filter, missing-director listing
  - countries.go: expanded top countries, per-country release-year
    share, top actors per country
  - runtime.go: longest movies, season thresholds, recently added
  - people.go: director and cast member lookups
  - genres.go: genre distribution and the Documentaries suffix filter
  - keywords.go: description keyword classification

Per-record parse failures in duration/date_added follow the engine's
configured policy: SkipInvalid (default) drops the offending record with
a warning and a Prometheus counter increment; FailFast returns the typed
per-record error instead.
*/
package reports
