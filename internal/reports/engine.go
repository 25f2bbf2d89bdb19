// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"time"

	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/metrics"
)

// ParsePolicy controls how reports treat per-record parse failures in
// the free-text duration and date_added fields.
type ParsePolicy int

const (
	// SkipInvalid drops the offending record, logs a warning, and
	// continues. This matches the permissive behavior of the source
	// dataset tooling and is the default.
	SkipInvalid ParsePolicy = iota

	// FailFast aborts the report with the typed per-record error.
	FailFast
)

// Defaults for caller-surfaced report parameters.
const (
	DefaultCountryLimit       = 5
	DefaultActorLimit         = 10
	DefaultSeasonThreshold    = 3
	DefaultRecencyWindowYears = 5
)

// Default keyword classification parameters.
var (
	DefaultKeywords     = []string{"kill", "violence"}
	DefaultFlaggedLabel = "A/R rated"
	DefaultCleanLabel   = "U/A Rated"
)

// Engine runs the report catalog against one immutable snapshot. All
// methods are safe for concurrent use: the snapshot is never mutated and
// every derived view is computed fresh per call.
type Engine struct {
	snap   *catalog.Snapshot
	policy ParsePolicy
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithParsePolicy sets the per-record parse failure policy.
func WithParsePolicy(p ParsePolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithClock overrides the engine's clock, used by the recently-added
// report. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a report engine over the given snapshot.
func NewEngine(snap *catalog.Snapshot, opts ...Option) *Engine {
	e := &Engine{
		snap:   snap,
		policy: SkipInvalid,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns the snapshot the engine runs against.
func (e *Engine) Snapshot() *catalog.Snapshot { return e.snap }

// records is a shorthand for the snapshot's backing slice.
func (e *Engine) records() []catalog.Record { return e.snap.Records() }

// skipParseFailure handles one per-record parse failure under the
// SkipInvalid policy: warn, count, move on. kind is "duration" or "date".
func skipParseFailure(kind string, err error) {
	metrics.ReportParseSkips.WithLabelValues(kind).Inc()
	logging.Warn().Err(err).Str("kind", kind).Msg("Record skipped: unparseable field")
}

// observe records report execution latency; used by every public report
// method via defer.
func observe(report string) func() {
	start := time.Now()
	return func() { metrics.ObserveReport(report, start) }
}
