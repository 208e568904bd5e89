// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by every HTTP
// endpoint, for both successes and errors.
//
// Status field values:
//   - "success": see Data
//   - "error": see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-31T12:00:00Z",
//	    "query_time_ms": 2
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "movie 999 not found in fitted catalog"
//	  },
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a structured error payload.
//
// Error codes used by the API:
//   - VALIDATION_ERROR: invalid query parameters
//   - NOT_FOUND: movie ID absent from the fitted catalog
//   - NOT_READY: the engine has not been fitted yet
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieSummary is the presentation shape of a catalog movie: the fitted
// metadata plus the externally resolved poster URL.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	GenreTags   string  `json:"genre_tags"`
	PosterURL   string  `json:"poster_url,omitempty"`
}

// MovieListData is the payload for the movie list endpoint.
type MovieListData struct {
	Total  int            `json:"total"`
	Movies []MovieSummary `json:"movies"`
}

// RecommendationItem is one recommended movie with its similarity score.
type RecommendationItem struct {
	MovieSummary
	Score float64 `json:"score"`
}

// RecommendationData is the payload for the recommendations endpoint.
type RecommendationData struct {
	MovieID1        int                  `json:"movie_id_1"`
	MovieID2        int                  `json:"movie_id_2"`
	K               int                  `json:"k"`
	ModelVersion    int                  `json:"model_version"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// StatusData is the payload for the status endpoint.
type StatusData struct {
	Fitted         bool      `json:"fitted"`
	CatalogSize    int       `json:"catalog_size"`
	VocabularySize int       `json:"vocabulary_size"`
	ModelVersion   int       `json:"model_version"`
	FittedAt       time.Time `json:"fitted_at,omitempty"`
	PostersEnabled bool      `json:"posters_enabled"`
}
