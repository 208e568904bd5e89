// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Command server runs the Movie Mixer HTTP server.
//
// Startup order:
//  1. Configuration is loaded via koanf (defaults, optional YAML file,
//     environment variables).
//  2. Logging is initialized from the loaded configuration.
//  3. The movie catalog is loaded from CSV via DuckDB and the
//     recommendation engine is fitted (when refit_on_startup is set).
//  4. The HTTP server and the optional periodic refit service are run
//     under a suture supervision tree.
//
// SIGINT and SIGTERM trigger a graceful shutdown of the whole tree.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/moviemixer/internal/api"
	"github.com/tomtom215/moviemixer/internal/catalog"
	"github.com/tomtom215/moviemixer/internal/config"
	"github.com/tomtom215/moviemixer/internal/logging"
	"github.com/tomtom215/moviemixer/internal/recommend"
	"github.com/tomtom215/moviemixer/internal/supervisor"
	"github.com/tomtom215/moviemixer/internal/supervisor/services"
	"github.com/tomtom215/moviemixer/internal/tmdb"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Config is not available yet, so this uses the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Movie Mixer")
	logging.Info().
		Str("movies_path", cfg.Catalog.MoviesPath).
		Str("keywords_path", cfg.Catalog.KeywordsPath).
		Int("min_vote_count", cfg.Catalog.MinVoteCount).
		Bool("posters_enabled", cfg.TMDB.Enabled).
		Msg("Configuration loaded")

	engine := recommend.NewEngine(logging.Logger())
	loader := catalog.NewLoader(&cfg.Catalog, logging.Logger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Recommend.RefitOnStartup {
		if err := fitFromCatalog(ctx, loader, engine); err != nil {
			logging.Fatal().Err(err).Msg("Failed to fit recommendation engine")
		}
	} else {
		logging.Info().Msg("Startup fit disabled; engine will report not ready until fitted")
	}

	posters := tmdb.NewClient(&cfg.TMDB, logging.Logger())
	if posters.Enabled() {
		logging.Info().Str("poster_size", cfg.TMDB.PosterSize).Msg("TMDB poster resolution enabled")
	}

	router := api.NewRouter(cfg, engine, posters, logging.Logger())
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// sutureslog wants an slog logger, so bridge zerolog over.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	if cfg.Recommend.RefitInterval > 0 {
		tree.AddEngineService(services.NewRefitService(loader, engine, cfg.Recommend.RefitInterval, logging.Logger()))
		logging.Info().Dur("interval", cfg.Recommend.RefitInterval).Msg("Periodic catalog refit enabled")
	}

	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	logging.Info().Msg("Stopped gracefully")
}

// fitFromCatalog loads the CSV catalog and fits the engine once, so the
// server starts ready to answer recommendation queries.
func fitFromCatalog(ctx context.Context, loader *catalog.Loader, engine *recommend.Engine) error {
	movies, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	return engine.Fit(ctx, movies)
}
