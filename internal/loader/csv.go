// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/catalograph/catalograph/internal/catalog"
	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/metrics"
)

// Column names of the catalog schema as they appear in the CSV header.
// Header matching is case-insensitive; "casts" is accepted as an alias
// for "cast" since both spellings occur in the wild.
const (
	colShowID      = "show_id"
	colType        = "type"
	colTitle       = "title"
	colDirector    = "director"
	colCast        = "cast"
	colCountry     = "country"
	colDateAdded   = "date_added"
	colReleaseYear = "release_year"
	colRating      = "rating"
	colDuration    = "duration"
	colListedIn    = "listed_in"
	colDescription = "description"
)

// requiredColumns lists every column the schema demands. A header missing
// any of these is a schema mismatch.
var requiredColumns = []string{
	colShowID, colType, colTitle, colDirector, colCast, colCountry,
	colDateAdded, colReleaseYear, colRating, colDuration, colListedIn,
	colDescription,
}

// ctxCheckInterval controls how often the row loop checks for context
// cancellation.
const ctxCheckInterval = 1000

// LoadFile reads the catalog CSV at path and returns the loaded snapshot.
func LoadFile(ctx context.Context, path string) (*catalog.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	snap, err := Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return snap, nil
}

// Load reads catalog records from r (CSV with a header row) and returns
// an immutable snapshot preserving source order.
//
// Returns a *catalog.SchemaError when a required column is absent from
// the header or a release_year value is not integer-parseable. All other
// field content is accepted verbatim.
func Load(ctx context.Context, r io.Reader) (*catalog.Snapshot, error) {
	start := time.Now()

	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &catalog.SchemaError{Field: colShowID, Reason: "empty source, header row required"}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []catalog.Record
	line := 1 // header was line 1
	for {
		if len(records)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("load canceled after %d records: %w", len(records), err)
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := rowToRecord(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	metrics.CatalogRecordsLoaded.Set(float64(len(records)))
	metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())

	logging.Info().
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog dataset loaded")

	return catalog.NewSnapshot(records), nil
}

// columnIndex maps every required schema column to its position in the
// header, failing with a SchemaError on the first missing column.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		// Strip the UTF-8 BOM some CSV exports prepend to the first column.
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name == "casts" {
			name = colCast
		}
		positions[name] = i
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, &catalog.SchemaError{Field: col, Reason: "required column absent from header"}
		}
		idx[col] = pos
	}
	return idx, nil
}

// rowToRecord converts one CSV row into a Record, coercing release_year.
func rowToRecord(row []string, idx map[string]int, line int) (catalog.Record, error) {
	field := func(col string) string {
		pos := idx[col]
		if pos >= len(row) {
			return ""
		}
		return row[pos]
	}

	rawYear := strings.TrimSpace(field(colReleaseYear))
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return catalog.Record{}, &catalog.SchemaError{
			Field:  colReleaseYear,
			Line:   line,
			Reason: fmt.Sprintf("value %q is not an integer", rawYear),
		}
	}

	return catalog.Record{
		ShowID:      field(colShowID),
		ContentType: field(colType),
		Title:       field(colTitle),
		Director:    field(colDirector),
		Cast:        field(colCast),
		Country:     field(colCountry),
		DateAdded:   field(colDateAdded),
		ReleaseYear: year,
		Rating:      field(colRating),
		Duration:    field(colDuration),
		ListedIn:    field(colListedIn),
		Description: field(colDescription),
	}, nil
}
