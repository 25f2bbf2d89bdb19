// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Package api exposes the report engine over a read-only REST surface
// built on the Chi router. Every endpoint is a thin adapter: it parses
// query parameters, calls one engine method, and wraps the result in
// the standard response envelope. No business logic lives here.
package api
