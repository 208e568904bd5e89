// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/config"
	"github.com/tomtom215/moviemixer/internal/recommend"
	"github.com/tomtom215/moviemixer/internal/tmdb"
)

// Router wires the recommendation engine and poster client into HTTP
// handlers.
type Router struct {
	cfg     *config.Config
	engine  *recommend.Engine
	posters *tmdb.Client
	logger  zerolog.Logger
}

// NewRouter creates the API router.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRouter(cfg *config.Config, engine *recommend.Engine, posters *tmdb.Client, logger zerolog.Logger) *Router {
	return &Router{
		cfg:     cfg,
		engine:  engine,
		posters: posters,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// Handler builds the full middleware and route tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(requestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.cfg.API.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	r.Get("/health", rt.handleHealth)
	r.Get("/health/ready", rt.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.Limit(
			rt.cfg.API.RateLimitReqs,
			rt.cfg.API.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
		r.Use(rt.observeRequests)

		r.Get("/movies", rt.handleMovies)
		r.Get("/movies/{movieID}", rt.handleMovie)
		r.Get("/recommendations", rt.handleRecommendations)
		r.Get("/status", rt.handleStatus)
	})

	return r
}
