// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == "" || b == "" {
		t.Fatal("GenerateRequestID() returned empty string")
	}
	if a == b {
		t.Errorf("GenerateRequestID() returned duplicate IDs: %s", a)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-123")
	}
}

func TestContextWithNewRequestID(t *testing.T) {
	ctx := ContextWithNewRequestID(context.Background())
	if RequestIDFromContext(ctx) == "" {
		t.Error("ContextWithNewRequestID() did not attach a request ID")
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	stored := zerolog.New(&buf)

	ctx := ContextWithLogger(context.Background(), stored)
	logger := LoggerFromContext(ctx)
	logger.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("LoggerFromContext() did not return the stored logger: %s", buf.String())
	}
}

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRequestID(ctx, "abc-999")

	Ctx(ctx).Info().Msg("with request id")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"abc-999"`) {
		t.Errorf("Ctx() output missing request_id: %s", out)
	}
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))

	Ctx(ctx).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("Ctx() added request_id when none was set: %s", buf.String())
	}
}
