// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/config"
	"github.com/tomtom215/moviemixer/internal/recommend"
)

// ErrNoMovies indicates the source files produced no usable catalog rows.
var ErrNoMovies = errors.New("catalog source produced no movies")

// Loader reads the movie catalog from the configured CSV files.
//
// Each Load opens a fresh in-memory DuckDB connection and closes it before
// returning; catalog reloads are rare enough that holding a connection
// open between them buys nothing.
type Loader struct {
	cfg    *config.CatalogConfig
	logger zerolog.Logger
}

// NewLoader creates a catalog loader for the given source configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(cfg *config.CatalogConfig, logger zerolog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Load reads, filters, and orders the catalog. The returned slice is in
// ascending movie-ID order and contains no duplicate IDs.
func (l *Loader) Load(ctx context.Context) ([]recommend.Movie, error) {
	if _, err := os.Stat(l.cfg.MoviesPath); err != nil {
		return nil, fmt.Errorf("movies file %s: %w", l.cfg.MoviesPath, err)
	}

	// The keywords file is optional: without it every movie gets an empty
	// keyword list and recommendations run on genres alone.
	withKeywords := l.cfg.KeywordsPath != ""
	if withKeywords {
		if _, err := os.Stat(l.cfg.KeywordsPath); err != nil {
			l.logger.Warn().
				Str("path", l.cfg.KeywordsPath).
				Err(err).
				Msg("keywords file unavailable, loading genres only")
			withKeywords = false
		}
	}

	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			l.logger.Warn().Err(cerr).Msg("failed to close catalog database")
		}
	}()

	rows, err := conn.QueryContext(ctx, l.buildQuery(withKeywords), l.cfg.MinVoteCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			l.logger.Warn().Err(cerr).Msg("failed to close catalog rows")
		}
	}()

	var (
		movies  []recommend.Movie
		seen    = make(map[int]struct{})
		dropped int
	)
	for rows.Next() {
		var (
			id          int64
			title       string
			overview    string
			voteAverage float64
			genres      string
			keywords    string
		)
		if err := rows.Scan(&id, &title, &overview, &voteAverage, &genres, &keywords); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		if _, dup := seen[int(id)]; dup {
			dropped++
			continue
		}
		seen[int(id)] = struct{}{}

		movies = append(movies, recommend.Movie{
			ID:          int(id),
			Title:       title,
			Overview:    overview,
			VoteAverage: voteAverage,
			RawGenres:   genres,
			RawKeywords: keywords,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: %s with min_vote_count=%d",
			ErrNoMovies, l.cfg.MoviesPath, l.cfg.MinVoteCount)
	}

	l.logger.Info().
		Int("movies", len(movies)).
		Int("duplicates_dropped", dropped).
		Int("min_vote_count", l.cfg.MinVoteCount).
		Bool("keywords", withKeywords).
		Msg("catalog loaded")

	return movies, nil
}

// buildQuery assembles the catalog SQL. File paths are embedded as quoted
// literals because DuckDB table functions cannot take bound parameters;
// quoteLiteral keeps paths with single quotes safe.
func (l *Loader) buildQuery(withKeywords bool) string {
	var b strings.Builder

	b.WriteString(`SELECT
    TRY_CAST(m.id AS BIGINT) AS id,
    COALESCE(m.title, '') AS title,
    COALESCE(m.overview, '') AS overview,
    COALESCE(TRY_CAST(m.vote_average AS DOUBLE), 0) AS vote_average,
    COALESCE(m.genres, '[]') AS genres,
`)
	if withKeywords {
		b.WriteString("    COALESCE(k.keywords, '[]') AS keywords\n")
	} else {
		b.WriteString("    '[]' AS keywords\n")
	}

	fmt.Fprintf(&b, "FROM read_csv(%s, header = true, all_varchar = true) AS m\n",
		quoteLiteral(l.cfg.MoviesPath))
	if withKeywords {
		fmt.Fprintf(&b, `LEFT JOIN read_csv(%s, header = true, all_varchar = true) AS k
    ON TRY_CAST(m.id AS BIGINT) = TRY_CAST(k.id AS BIGINT)
`, quoteLiteral(l.cfg.KeywordsPath))
	}

	b.WriteString(`WHERE TRY_CAST(m.id AS BIGINT) > 0
  AND COALESCE(TRY_CAST(m.vote_count AS BIGINT), 0) >= ?
ORDER BY id`)

	return b.String()
}

// quoteLiteral wraps s as a single-quoted SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
