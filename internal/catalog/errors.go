// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package catalog

import "fmt"

// SchemaError indicates the tabular source does not match the catalog
// schema: a required column is absent, or a required field could not be
// coerced. Schema errors are fatal at load time; the loader never guesses
// defaults for required fields.
type SchemaError struct {
	// Field is the schema field that failed (column name).
	Field string

	// Line is the 1-based source line, 0 when the error concerns the header.
	Line int

	// Reason describes what went wrong.
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("schema mismatch: field %q line %d: %s", e.Field, e.Line, e.Reason)
	}
	return fmt.Sprintf("schema mismatch: field %q: %s", e.Field, e.Reason)
}

// DurationParseError indicates a record's duration field does not start
// with an integer token. Per-record and non-fatal under the default skip
// policy; the source data is known to contain inconsistent formats.
type DurationParseError struct {
	ShowID string
	Raw    string
}

func (e *DurationParseError) Error() string {
	return fmt.Sprintf("record %s: cannot parse duration %q", e.ShowID, e.Raw)
}

// DateParseError indicates a record's date_added field is not in the
// "Month DD, YYYY" format. Per-record and non-fatal under the default
// skip policy.
type DateParseError struct {
	ShowID string
	Raw    string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("record %s: cannot parse date_added %q", e.ShowID, e.Raw)
}
