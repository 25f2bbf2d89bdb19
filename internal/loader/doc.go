// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package loader reads the catalog dataset from CSV into an immutable
catalog.Snapshot.

The loader is deliberately permissive: it validates only what the schema
requires (all columns present, release_year integer-parseable) and fails
fast with a catalog.SchemaError when that contract is broken. Free-text
fields that need parsing later (duration, date_added) are accepted as-is
at load time and surface per-record errors only when a report parses
them.

The source is read exactly once per process; there is no refresh or
write path.
*/
package loader
