// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/moviemixer/internal/recommend"
)

// CatalogSource loads the movie catalog.
type CatalogSource interface {
	Load(ctx context.Context) ([]recommend.Movie, error)
}

// Fitter consumes a catalog and replaces the serving model.
type Fitter interface {
	Fit(ctx context.Context, catalog []recommend.Movie) error
}

// RefitService periodically reloads the catalog and refits the engine, so
// edits to the catalog files show up without a restart. A failed reload or
// refit leaves the previous model serving and is retried next interval.
type RefitService struct {
	source   CatalogSource
	engine   Fitter
	interval time.Duration
	logger   zerolog.Logger
}

// NewRefitService creates the periodic refit service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefitService(source CatalogSource, engine Fitter, interval time.Duration, logger zerolog.Logger) *RefitService {
	return &RefitService{
		source:   source,
		engine:   engine,
		interval: interval,
		logger:   logger.With().Str("component", "refit").Logger(),
	}
}

// Serve implements suture.Service. A non-positive interval disables the
// service permanently.
func (s *RefitService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refit(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// refit runs one reload-and-fit cycle.
func (s *RefitService) refit(ctx context.Context) {
	start := time.Now()

	catalog, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog reload failed, keeping current model")
		return
	}
	if err := s.engine.Fit(ctx, catalog); err != nil {
		s.logger.Error().Err(err).Msg("refit failed, keeping current model")
		return
	}

	s.logger.Info().
		Int("catalog_size", len(catalog)).
		Dur("duration", time.Since(start)).
		Msg("periodic refit complete")
}

// String identifies the service in suture's logs.
func (s *RefitService) String() string {
	return "catalog-refit"
}
