// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"type": "Movie", "count": 6131}],
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z", "query_time_ms": 1}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	// Timestamp is the server time when the response was generated.
	Timestamp time.Time `json:"timestamp"`

	// QueryTimeMS is the report execution time in milliseconds.
	QueryTimeMS int64 `json:"query_time_ms,omitempty"`

	// Count is the number of rows in Data for list responses.
	Count int `json:"count,omitempty"`
}

// APIError represents error details in an error response.
type APIError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details contains optional additional error context.
	Details interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	CatalogLoaded bool      `json:"catalog_loaded"`
	TotalRecords  int       `json:"total_records"`
	LoadedAt      time.Time `json:"loaded_at,omitempty"`
	Uptime        float64   `json:"uptime_seconds"`
}
