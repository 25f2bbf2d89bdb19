// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package reports

import (
	"strings"

	"github.com/catalograph/catalograph/internal/catalog"
)

// ByDirector returns records directed by the given name, in snapshot
// order. The director field is expanded into atomic names and matched
// exactly, case-sensitively, so "Jane Doe" matches a record listing
// "John Roe, Jane Doe" but not one listing "jane doe".
func (e *Engine) ByDirector(name string) []catalog.Record {
	defer observe("by_director")()

	var out []catalog.Record
	for _, r := range e.records() {
		for _, director := range r.Directors() {
			if director == name {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByCastMember returns records whose raw cast field contains the given
// name as a case-sensitive substring, in snapshot order. sinceYear > 0
// additionally requires release_year >= sinceYear (the "recent
// appearances" variant); sinceYear <= 0 disables the bound.
//
// Substring matching on the raw field (rather than expanded exact match)
// is the source behavior: it tolerates partial names at the cost of
// false positives on name prefixes.
func (e *Engine) ByCastMember(name string, sinceYear int) []catalog.Record {
	defer observe("by_cast_member")()

	var out []catalog.Record
	for _, r := range e.records() {
		if !strings.Contains(r.Cast, name) {
			continue
		}
		if sinceYear > 0 && r.ReleaseYear < sinceYear {
			continue
		}
		out = append(out, r)
	}
	return out
}
