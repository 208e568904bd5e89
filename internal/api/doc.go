// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package api provides the HTTP surface using the Chi router.
//
// Endpoints:
//
//	GET /health                       liveness probe
//	GET /health/ready                 readiness probe (engine fitted)
//	GET /metrics                      Prometheus metrics
//	GET /api/v1/movies                catalog listing with optional search
//	GET /api/v1/movies/{movieID}      single catalog entry
//	GET /api/v1/recommendations       pair-based recommendations
//	GET /api/v1/status                engine fit status
//
// All /api/v1 responses use the models.APIResponse envelope. Poster URLs
// are resolved best effort through the tmdb package; a poster failure
// never fails the request.
package api
