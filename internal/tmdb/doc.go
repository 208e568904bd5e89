// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package tmdb resolves movie poster URLs through the TMDB API.
//
// The catalog CSV files carry no poster information, so the API layer asks
// this package to decorate responses on demand. Resolution is best effort:
// when the client is disabled, rate limited, or the upstream is down, the
// poster URL is simply empty and recommendations are unaffected.
//
// Outbound traffic is protected three ways: a token-bucket rate limiter
// keeps the client inside TMDB's request budget, a circuit breaker stops
// hammering a failing upstream, and resolved URLs are cached with a TTL so
// repeat lookups never leave the process.
package tmdb
