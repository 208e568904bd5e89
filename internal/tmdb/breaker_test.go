// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package tmdb

import (
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/rs/zerolog"
)

func TestStateToString(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  string
	}{
		{gobreaker.StateClosed, "closed"},
		{gobreaker.StateHalfOpen, "half-open"},
		{gobreaker.StateOpen, "open"},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.want {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStateToFloat(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  float64
	}{
		{gobreaker.StateClosed, 0},
		{gobreaker.StateHalfOpen, 1},
		{gobreaker.StateOpen, 2},
	}
	for _, tt := range tests {
		if got := stateToFloat(tt.state); got != tt.want {
			t.Errorf("stateToFloat(%v) = %f, want %f", tt.state, got, tt.want)
		}
	}
}

func TestRequestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"open circuit", gobreaker.ErrOpenState, "rejected"},
		{"half-open saturation", gobreaker.ErrTooManyRequests, "rejected"},
		{"plain failure", errors.New("boom"), "failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requestResult(tt.err); got != tt.want {
				t.Errorf("requestResult(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	b := newBreaker("test-breaker-success", zerolog.Nop())

	got, err := b.execute(func() (string, error) {
		return "/poster.jpg", nil
	})
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if got != "/poster.jpg" {
		t.Errorf("execute() = %q, want %q", got, "/poster.jpg")
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	b := newBreaker("test-breaker-open", zerolog.Nop())
	boom := errors.New("upstream down")

	// Below the 5-request minimum the breaker must stay closed.
	for i := 0; i < 4; i++ {
		if _, err := b.execute(func() (string, error) { return "", boom }); !errors.Is(err, boom) {
			t.Fatalf("execute() error = %v, want the underlying failure", err)
		}
	}

	// The fifth failure crosses both thresholds and opens the circuit.
	if _, err := b.execute(func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("execute() error = %v, want the underlying failure", err)
	}
	_, err := b.execute(func() (string, error) { return "ok", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("execute() error = %v, want ErrOpenState", err)
	}
}
