// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Package models defines the result types produced by the report engine
// and the standardized API response envelope serialized by the HTTP
// layer. Result structs carry JSON tags so handlers can return them
// directly without translation.
package models
