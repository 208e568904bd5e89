// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moviemixer/internal/logging"
	"github.com/tomtom215/moviemixer/internal/models"
	"github.com/tomtom215/moviemixer/internal/recommend"
	"github.com/tomtom215/moviemixer/internal/validation"
)

// recommendationRequest binds the recommendations query parameters.
type recommendationRequest struct {
	MovieID1 int `validate:"required,gt=0"`
	MovieID2 int `validate:"required,gt=0"`
	K        int `validate:"gte=1"`
}

// movieListRequest binds the movie list query parameters.
type movieListRequest struct {
	Query string `validate:"omitempty,max=200"`
	Limit int    `validate:"gte=1"`
}

// handleHealth is the liveness probe.
func (rt *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleReady is the readiness probe: ready once the engine has fitted.
func (rt *Router) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !rt.engine.Status().Fitted {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}

// handleMovies serves GET /api/v1/movies with optional substring search
// over titles (q) and a result cap (limit).
func (rt *Router) handleMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := movieListRequest{
		Query: r.URL.Query().Get("q"),
		Limit: getIntParam(r, "limit", rt.cfg.API.DefaultPageSize),
	}
	if req.Limit > rt.cfg.API.MaxPageSize {
		req.Limit = rt.cfg.API.MaxPageSize
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	movies := rt.engine.Movies()
	if movies == nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "catalog has not been fitted yet", nil)
		return
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	matched := make([]models.MovieSummary, 0, req.Limit)
	total := 0
	for i := range movies {
		if query != "" && !strings.Contains(strings.ToLower(movies[i].Title), query) {
			continue
		}
		total++
		if len(matched) < req.Limit {
			matched = append(matched, rt.movieSummary(r.Context(), &movies[i], false))
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.MovieListData{
			Total:  total,
			Movies: matched,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// handleMovie serves GET /api/v1/movies/{movieID}.
func (rt *Router) handleMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil || movieID <= 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "movieID must be a positive integer", nil)
		return
	}

	movie, err := rt.engine.Movie(movieID)
	if err != nil {
		rt.respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   rt.movieSummary(r.Context(), &movie, true),
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// handleRecommendations serves GET /api/v1/recommendations with the
// movie1, movie2, and k query parameters.
func (rt *Router) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req := recommendationRequest{
		MovieID1: getIntParam(r, "movie1", 0),
		MovieID2: getIntParam(r, "movie2", 0),
		K:        getIntParam(r, "k", rt.cfg.Recommend.DefaultK),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}
	if req.K > rt.cfg.Recommend.MaxK {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"k must be at most "+strconv.Itoa(rt.cfg.Recommend.MaxK), nil)
		return
	}

	result, err := rt.engine.Recommend(r.Context(), req.MovieID1, req.MovieID2, req.K)
	if err != nil {
		rt.respondEngineError(w, err)
		return
	}

	items := make([]models.RecommendationItem, len(result.Items))
	for i := range result.Items {
		items[i] = models.RecommendationItem{
			MovieSummary: rt.movieSummary(r.Context(), &result.Items[i].Movie, true),
			Score:        result.Items[i].Score,
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationData{
			MovieID1:        result.Metadata.MovieID1,
			MovieID2:        result.Metadata.MovieID2,
			K:               result.Metadata.K,
			ModelVersion:    result.Metadata.ModelVersion,
			Recommendations: items,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: result.Metadata.LatencyMS,
		},
	})
}

// handleStatus serves GET /api/v1/status.
func (rt *Router) handleStatus(w http.ResponseWriter, _ *http.Request) {
	status := rt.engine.Status()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.StatusData{
			Fitted:         status.Fitted,
			CatalogSize:    status.CatalogSize,
			VocabularySize: status.VocabularySize,
			ModelVersion:   status.ModelVersion,
			FittedAt:       status.FittedAt,
			PostersEnabled: rt.posters.Enabled(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// respondEngineError maps engine errors onto HTTP statuses.
func (rt *Router) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, recommend.ErrNotFitted):
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "engine has not been fitted yet", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "recommendation failed", err)
	}
}

// movieSummary converts an engine movie to its presentation shape,
// optionally resolving the poster URL. Poster failures degrade to an
// empty URL.
func (rt *Router) movieSummary(ctx context.Context, m *recommend.Movie, withPoster bool) models.MovieSummary {
	summary := models.MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		VoteAverage: m.VoteAverage,
		GenreTags:   m.GenreTags,
	}

	if withPoster && rt.posters.Enabled() {
		url, err := rt.posters.PosterURL(ctx, m.ID)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int("movie_id", m.ID).Msg("poster resolution failed")
		} else {
			summary.PosterURL = url
		}
	}

	return summary
}
