// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"time"
)

// Movie represents a catalog item with the metadata needed for
// recommendations and presentation.
type Movie struct {
	// ID is the TMDB movie identifier (unique, positive).
	ID int `json:"id"`

	// Title is the movie title.
	Title string `json:"title"`

	// Overview is the display synopsis. It does not participate in
	// vectorization.
	Overview string `json:"overview"`

	// VoteAverage is the 0-10 aggregate rating.
	VoteAverage float64 `json:"vote_average"`

	// PosterPath is an opaque poster reference resolved externally by the
	// tmdb package. Empty when unknown.
	PosterPath string `json:"poster_path,omitempty"`

	// RawGenres is the genre list as serialized in the source data: a JSON
	// array of objects with a "name" attribute.
	RawGenres string `json:"-"`

	// RawKeywords is the keyword list in the same serialized shape.
	RawKeywords string `json:"-"`

	// GenreTags is the normalized whitespace-joined genre string, derived
	// from RawGenres during Fit.
	GenreTags string `json:"genre_tags"`

	// KeywordTags is the normalized whitespace-joined keyword string,
	// derived from RawKeywords during Fit.
	KeywordTags string `json:"-"`
}

// FeatureDocument returns the composite feature document used for
// vectorization: genre tags, a single space, keyword tags. It is always
// re-derived from the tag fields, never stored.
func (m *Movie) FeatureDocument() string {
	return ComposeDocument(m.GenreTags, m.KeywordTags)
}

// ScoredMovie is a recommended movie with its similarity score.
type ScoredMovie struct {
	// Movie is the recommended catalog item.
	Movie Movie `json:"movie"`

	// Score is the cosine similarity between the hybrid query vector and
	// this movie's feature vector. Non-negative; higher is more similar.
	Score float64 `json:"score"`
}

// Result is an ordered recommendation result, strictly non-increasing by
// score. It never contains the two query movies.
type Result struct {
	// Items is the ordered list of recommendations, at most the requested
	// top-N long.
	Items []ScoredMovie `json:"items"`

	// Metadata contains timing and diagnostic information.
	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata contains timing and diagnostic information for one
// recommendation call.
type ResultMetadata struct {
	// MovieID1 and MovieID2 are the query pair.
	MovieID1 int `json:"movie_id_1"`
	MovieID2 int `json:"movie_id_2"`

	// K is the requested number of recommendations.
	K int `json:"k"`

	// LatencyMS is the recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// ModelVersion is the fit generation that served this result.
	ModelVersion int `json:"model_version"`

	// FittedAt is when the serving model was fitted.
	FittedAt time.Time `json:"fitted_at"`

	// Timestamp is when the result was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Status describes the engine's current fit state.
type Status struct {
	// Fitted reports whether a catalog has been fitted.
	Fitted bool `json:"fitted"`

	// CatalogSize is the number of movies in the fitted catalog.
	CatalogSize int `json:"catalog_size"`

	// VocabularySize is the number of TF-IDF vocabulary terms.
	VocabularySize int `json:"vocabulary_size"`

	// ModelVersion is incremented on each successful Fit.
	ModelVersion int `json:"model_version"`

	// FittedAt is when the current model was fitted.
	FittedAt time.Time `json:"fitted_at,omitempty"`
}
