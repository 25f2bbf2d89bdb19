// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"strings"

	"github.com/catalograph/catalograph/internal/models"
)

// ClassifyByKeywords buckets every record by a case-insensitive keyword
// scan of its description: a record matching ANY keyword gets the
// flagged label, all others get the clean label. Empty parameters fall
// back to DefaultKeywords / DefaultFlaggedLabel / DefaultCleanLabel.
//
// The flagged bucket is always returned first, and both buckets appear
// even when their count is zero, so callers can rely on the shape.
func (e *Engine) ClassifyByKeywords(keywords []string, flaggedLabel, cleanLabel string) []models.KeywordBucket {
	defer observe("classify_by_keywords")()

	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if flaggedLabel == "" {
		flaggedLabel = DefaultFlaggedLabel
	}
	if cleanLabel == "" {
		cleanLabel = DefaultCleanLabel
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	flagged, clean := 0, 0
	for _, r := range e.records() {
		desc := strings.ToLower(r.Description)
		matched := false
		for _, kw := range lowered {
			if kw != "" && strings.Contains(desc, kw) {
				matched = true
				break
			}
		}
		if matched {
			flagged++
		} else {
			clean++
		}
	}

	return []models.KeywordBucket{
		{Label: flaggedLabel, Count: flagged},
		{Label: cleanLabel, Count: clean},
	}
}
