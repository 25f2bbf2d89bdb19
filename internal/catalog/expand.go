// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package catalog

import "strings"

// SplitMulti expands a comma-separated multi-value field into its atomic
// trimmed values. A null/empty field yields nil, and atoms that trim to
// the empty string are dropped, so "A, B,C" expands to ["A","B","C"] and
// "India," expands to ["India"].
//
// This is the one shared expansion primitive in the system. Every report
// that explodes a record into one row per value (countries, directors,
// genres, actors) must go through it so null and whitespace handling stay
// identical across all reports.
func SplitMulti(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	atoms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			atoms = append(atoms, p)
		}
	}
	if len(atoms) == 0 {
		return nil
	}
	return atoms
}
