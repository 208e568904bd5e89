// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moviemixer/internal/config"
	"github.com/tomtom215/moviemixer/internal/metrics"
)

// defaultImageBaseURL is used when the TMDB /configuration endpoint is
// unreachable. TMDB has served images from this host for years.
const defaultImageBaseURL = "https://image.tmdb.org/t/p/"

// maxErrorBodySize limits how much of an error response body is read for
// diagnostics.
const maxErrorBodySize = 64 * 1024

// ErrUnexpectedStatus indicates a TMDB response with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected TMDB response status")

// Client resolves poster URLs for catalog movies via the TMDB API.
//
// Thread safety: all methods are safe for concurrent use.
type Client struct {
	cfg     *config.TMDBConfig
	http    *http.Client
	limiter *rate.Limiter
	breaker *breaker
	cache   *posterCache
	logger  zerolog.Logger

	imageBaseOnce sync.Once
	imageBase     string
}

// NewClient creates a TMDB client from configuration. A disabled
// configuration yields a client whose PosterURL always returns "".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg *config.TMDBConfig, logger zerolog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		breaker: newBreaker("tmdb-api", logger),
		cache:   newPosterCache(cfg.CacheTTL),
		logger:  logger.With().Str("component", "tmdb").Logger(),
	}
}

// Enabled reports whether poster resolution is configured.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.Token != ""
}

// PosterURL resolves the full poster image URL for a movie ID. Disabled
// clients and movies without a poster return "". Results, including the
// empty ones, are cached for the configured TTL so a missing poster does
// not trigger a lookup per request.
func (c *Client) PosterURL(ctx context.Context, movieID int) (string, error) {
	if !c.Enabled() {
		return "", nil
	}

	if url, ok := c.cache.get(movieID); ok {
		return url, nil
	}

	posterPath, err := c.fetchPosterPath(ctx, movieID)
	if err != nil {
		return "", err
	}

	url := ""
	if posterPath != "" {
		url = c.imageBaseURL(ctx) + c.cfg.PosterSize + posterPath
	}
	c.cache.set(movieID, url)
	return url, nil
}

// movieDetails is the subset of the TMDB movie details payload we need.
type movieDetails struct {
	PosterPath string `json:"poster_path"`
}

// fetchPosterPath requests the movie details and extracts the poster path.
// The call runs behind the circuit breaker and rate limiter.
func (c *Client) fetchPosterPath(ctx context.Context, movieID int) (string, error) {
	result, err := c.breaker.execute(func() (string, error) {
		var details movieDetails
		if err := c.doGet(ctx, fmt.Sprintf("/movie/%d", movieID), &details); err != nil {
			return "", err
		}
		return details.PosterPath, nil
	})
	if err != nil {
		metrics.TMDBRequests.WithLabelValues("movie_details", requestResult(err)).Inc()
		return "", err
	}
	metrics.TMDBRequests.WithLabelValues("movie_details", "success").Inc()
	return result, nil
}

// tmdbConfiguration mirrors the /configuration payload's image section.
type tmdbConfiguration struct {
	Images struct {
		SecureBaseURL string `json:"secure_base_url"`
	} `json:"images"`
}

// imageBaseURL returns the image host base path, querying /configuration
// once per process. On failure the well-known default is used; TMDB's
// image host has been stable far longer than any process lifetime.
func (c *Client) imageBaseURL(ctx context.Context) string {
	c.imageBaseOnce.Do(func() {
		c.imageBase = defaultImageBaseURL

		base, err := c.breaker.execute(func() (string, error) {
			var conf tmdbConfiguration
			if err := c.doGet(ctx, "/configuration", &conf); err != nil {
				return "", err
			}
			return conf.Images.SecureBaseURL, nil
		})
		if err != nil {
			metrics.TMDBRequests.WithLabelValues("configuration", requestResult(err)).Inc()
			c.logger.Warn().Err(err).Msg("failed to fetch image configuration, using default base URL")
			return
		}
		metrics.TMDBRequests.WithLabelValues("configuration", "success").Inc()
		if base != "" {
			c.imageBase = base
		}
	})
	return c.imageBase
}

// doGet performs an authenticated GET against the TMDB API and decodes the
// JSON response into v.
func (c *Client) doGet(ctx context.Context, path string, v interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%w: %s returned %d: %s", ErrUnexpectedStatus, path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// CacheTTL exposes the configured poster cache TTL, mainly for status
// reporting.
func (c *Client) CacheTTL() time.Duration {
	return c.cfg.CacheTTL
}
