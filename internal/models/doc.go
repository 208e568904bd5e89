// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package models defines the HTTP API's wire shapes: the standard response
// envelope and the per-endpoint payload types. The engine's internal types
// stay in internal/recommend; this package is purely presentational.
package models
