// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package catalog

import (
	"strconv"
	"strings"
	"time"
)

// DateAddedLayout is the literal human-readable format of the date_added
// field, e.g. "September 25, 2021".
const DateAddedLayout = "January 2, 2006"

// DurationValue extracts the leading integer from a record's duration
// field ("90 min" -> 90, "3 Seasons" -> 3). The unit depends on the
// record's content type, so callers comparing durations numerically must
// branch on ContentType first.
//
// Returns a *DurationParseError when the field is empty or its first
// space-separated token is not an integer.
func DurationValue(r Record) (int, error) {
	token := r.Duration
	if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &DurationParseError{ShowID: r.ShowID, Raw: r.Duration}
	}
	return n, nil
}

// DateAdded parses a record's date_added field using DateAddedLayout.
// Returns a *DateParseError when the field is null or malformed.
func DateAdded(r Record) (time.Time, error) {
	raw := strings.TrimSpace(r.DateAdded)
	if raw == "" {
		return time.Time{}, &DateParseError{ShowID: r.ShowID, Raw: r.DateAdded}
	}
	t, err := time.Parse(DateAddedLayout, raw)
	if err != nil {
		return time.Time{}, &DateParseError{ShowID: r.ShowID, Raw: r.DateAdded}
	}
	return t, nil
}
