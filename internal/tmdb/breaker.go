// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package tmdb

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/metrics"
)

// breaker wraps the TMDB calls with circuit breaker protection. Poster
// resolution is decorative, so the breaker is tuned to give up quickly and
// recover on its own rather than to fight for every request.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

// newBreaker creates a circuit breaker that opens after a 60% failure rate
// over at least 5 requests, stays open for 30 seconds, and allows 2 probe
// requests in the half-open state.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreaker(name string, logger zerolog.Logger) *breaker {
	log := logger.With().Str("component", "tmdb").Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			log.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn behind the circuit breaker.
func (b *breaker) execute(fn func() (string, error)) (string, error) {
	return b.cb.Execute(fn)
}

// requestResult maps an execute error to a metrics result label.
func requestResult(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "rejected"
	}
	return "failure"
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
