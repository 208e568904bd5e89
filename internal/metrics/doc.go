// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package metrics provides Prometheus instrumentation for Movie Mixer:
// engine fit and recommend latency, catalog and vocabulary gauges,
// HTTP request durations, and TMDB client / circuit breaker counters.
//
// Metrics are registered with the default registry via promauto and exposed
// on /metrics by the HTTP server.
package metrics
