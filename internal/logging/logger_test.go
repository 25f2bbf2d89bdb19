// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"fatal":    zerolog.FatalLevel,
		"panic":    zerolog.PanicLevel,
		"disabled": zerolog.Disabled,
		"bogus":    zerolog.InfoLevel,
		"":         zerolog.InfoLevel,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestInitWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{})

	Info().Str("component", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"test"`) || !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	t.Run("round trip through context", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-123")
		if got := RequestIDFromContext(ctx); got != "req-123" {
			t.Errorf("RequestIDFromContext = %q, want req-123", got)
		}
	})

	t.Run("absent id yields empty string", func(t *testing.T) {
		if got := RequestIDFromContext(context.Background()); got != "" {
			t.Errorf("RequestIDFromContext = %q, want empty", got)
		}
	})

	t.Run("ctx logger includes request id", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: "debug", Output: &buf})
		defer Init(Config{})

		ctx := ContextWithRequestID(context.Background(), "req-456")
		Ctx(ctx).Info().Msg("scoped")

		if !strings.Contains(buf.String(), `"request_id":"req-456"`) {
			t.Errorf("log output missing request id: %s", buf.String())
		}
	})
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || a == "" {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a, b)
	}
}
