// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/metrics"
)

// DefaultTopN is the number of recommendations returned when the caller
// does not request a specific count.
const DefaultTopN = 3

// Engine is the recommendation facade. It owns the fitted vector space
// (vocabulary, vector matrix, ID index) and exposes the Fit/Recommend
// contract.
//
// It is safe for concurrent use: Recommend takes a shared lock and
// performs no mutation of fitted state, while Fit builds a complete new
// model and swaps it in atomically under an exclusive lock.
type Engine struct {
	logger zerolog.Logger

	mu    sync.RWMutex
	model *fittedModel
}

// fittedModel holds everything produced by one Fit call. All fields are
// read-only after construction; a refit builds a fresh model and replaces
// the pointer, discarding all prior state.
type fittedModel struct {
	movies   []Movie
	vectors  []SparseVector
	idIndex  map[int]int
	vec      *Vectorizer
	version  int
	fittedAt time.Time
}

// NewEngine creates an unfitted engine. Fit must succeed before Recommend
// can serve results.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Fit validates the catalog, derives the normalized tag fields and feature
// documents, fits the TF-IDF vector space, and builds the ID index. On
// success the new model replaces any previous one atomically; on failure
// the previous model (if any) keeps serving.
func (e *Engine) Fit(ctx context.Context, catalog []Movie) error {
	start := time.Now()

	model, err := e.buildModel(ctx, catalog)
	metrics.ObserveFit(time.Since(start), err)
	if err != nil {
		e.logger.Error().Err(err).Int("catalog_size", len(catalog)).Msg("fit failed")
		return err
	}

	e.mu.Lock()
	if e.model != nil {
		model.version = e.model.version + 1
	}
	e.model = model
	e.mu.Unlock()

	metrics.CatalogSize.Set(float64(len(model.movies)))
	metrics.VocabularySize.Set(float64(model.vec.VocabularySize()))
	metrics.ModelVersion.Set(float64(model.version))

	e.logger.Info().
		Int("catalog_size", len(model.movies)).
		Int("vocabulary_size", model.vec.VocabularySize()).
		Int("model_version", model.version).
		Dur("duration", time.Since(start)).
		Msg("engine fitted")

	return nil
}

// buildModel constructs a complete fitted model without touching engine
// state, so a failed fit never leaves the engine half-replaced.
func (e *Engine) buildModel(ctx context.Context, catalog []Movie) (*fittedModel, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	// The engine owns its copy; catalog slices handed in by loaders must
	// not alias fitted state.
	movies := make([]Movie, len(catalog))
	copy(movies, catalog)

	idIndex := make(map[int]int, len(movies))
	docs := make([]string, len(movies))
	for i := range movies {
		m := &movies[i]
		if m.ID <= 0 {
			return nil, &InvalidIDError{MovieID: m.ID}
		}
		if _, dup := idIndex[m.ID]; dup {
			return nil, &DuplicateIDError{MovieID: m.ID}
		}
		idIndex[m.ID] = i

		m.GenreTags = NormalizeTags(m.RawGenres)
		m.KeywordTags = NormalizeTags(m.RawKeywords)
		docs[i] = m.FeatureDocument()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec, vectors := FitVectorizer(docs)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &fittedModel{
		movies:   movies,
		vectors:  vectors,
		idIndex:  idIndex,
		vec:      vec,
		version:  1,
		fittedAt: time.Now(),
	}, nil
}

// Recommend returns the topN movies most similar to the soft intersection
// of the two given movies. The query movies themselves are never part of
// the result. topN values below 1 fall back to DefaultTopN.
//
// Returns an error matching ErrNotFitted before the first successful Fit,
// or matching ErrNotFound when either ID is absent from the fitted index.
func (e *Engine) Recommend(ctx context.Context, movieID1, movieID2, topN int) (*Result, error) {
	start := time.Now()
	if topN < 1 {
		topN = DefaultTopN
	}

	e.mu.RLock()
	model := e.model
	e.mu.RUnlock()

	if model == nil {
		metrics.ObserveRecommend(time.Since(start), "not_fitted")
		return nil, ErrNotFitted
	}

	pos1, ok := model.idIndex[movieID1]
	if !ok {
		metrics.ObserveRecommend(time.Since(start), "not_found")
		return nil, &NotFoundError{MovieID: movieID1}
	}
	pos2, ok := model.idIndex[movieID2]
	if !ok {
		metrics.ObserveRecommend(time.Since(start), "not_found")
		return nil, &NotFoundError{MovieID: movieID2}
	}

	if err := ctx.Err(); err != nil {
		metrics.ObserveRecommend(time.Since(start), "error")
		return nil, err
	}

	// Per-call state only: the hybrid vector and the score vector live
	// and die inside this call.
	hybrid := SynthesizeHybrid(model.vectors[pos1], model.vectors[pos2])
	exclude := map[int]struct{}{pos1: {}, pos2: {}}
	top := rankTopN(model.vectors, model.vec.VocabularySize(), hybrid, exclude, topN)

	items := make([]ScoredMovie, len(top))
	for i, sp := range top {
		items[i] = ScoredMovie{
			Movie: model.movies[sp.position],
			Score: sp.score,
		}
	}

	latency := time.Since(start)
	metrics.ObserveRecommend(latency, "success")

	e.logger.Debug().
		Int("movie_id_1", movieID1).
		Int("movie_id_2", movieID2).
		Int("k", topN).
		Int("returned", len(items)).
		Dur("latency", latency).
		Msg("recommendation served")

	return &Result{
		Items: items,
		Metadata: ResultMetadata{
			MovieID1:     movieID1,
			MovieID2:     movieID2,
			K:            topN,
			LatencyMS:    latency.Milliseconds(),
			ModelVersion: model.version,
			FittedAt:     model.fittedAt,
			Timestamp:    time.Now(),
		},
	}, nil
}

// Movies returns the fitted catalog in fit order, or nil before the first
// successful Fit. The returned slice is shared read-only state; callers
// must not modify it.
func (e *Engine) Movies() []Movie {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.model == nil {
		return nil
	}
	return e.model.movies
}

// Movie looks up a fitted catalog entry by ID.
func (e *Engine) Movie(movieID int) (Movie, error) {
	e.mu.RLock()
	model := e.model
	e.mu.RUnlock()

	if model == nil {
		return Movie{}, ErrNotFitted
	}
	pos, ok := model.idIndex[movieID]
	if !ok {
		return Movie{}, &NotFoundError{MovieID: movieID}
	}
	return model.movies[pos], nil
}

// Status reports the engine's current fit state.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.model == nil {
		return Status{}
	}
	return Status{
		Fitted:         true,
		CatalogSize:    len(e.model.movies),
		VocabularySize: e.model.vec.VocabularySize(),
		ModelVersion:   e.model.version,
		FittedAt:       e.model.fittedAt,
	}
}
