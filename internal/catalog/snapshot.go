// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package catalog

// Snapshot is the immutable in-memory table the query engine runs
// against. It is created once by the dataset loader and never updated or
// deleted from; every derived view is computed fresh per report, so a
// Snapshot is safe for concurrent use by any number of readers.
type Snapshot struct {
	records []Record
}

// NewSnapshot builds a snapshot from an ordered record sequence. The
// records are copied so later mutation of the caller's slice cannot leak
// into the snapshot.
func NewSnapshot(records []Record) *Snapshot {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Snapshot{records: copied}
}

// Records returns the backing record slice. Callers must treat it as
// read-only; it is shared across all reports.
func (s *Snapshot) Records() []Record {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}
