// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for invalid or inconsistent values.
// It runs all section validators and returns the first failure.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateCatalog,
		c.validateRecommend,
		c.validateTMDB,
		c.validateAPI,
	}

	for _, validator := range validators {
		if err := validator(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level must be a valid level, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.MoviesPath == "" {
		return fmt.Errorf("catalog.movies_path must not be empty")
	}
	if c.Catalog.KeywordsPath == "" {
		return fmt.Errorf("catalog.keywords_path must not be empty")
	}
	if c.Catalog.MinVoteCount < 0 {
		return fmt.Errorf("catalog.min_vote_count must not be negative, got %d", c.Catalog.MinVoteCount)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultK < 1 {
		return fmt.Errorf("recommend.default_k must be at least 1, got %d", c.Recommend.DefaultK)
	}
	if c.Recommend.MaxK < c.Recommend.DefaultK {
		return fmt.Errorf("recommend.max_k (%d) must be >= recommend.default_k (%d)",
			c.Recommend.MaxK, c.Recommend.DefaultK)
	}
	if c.Recommend.RefitInterval < 0 {
		return fmt.Errorf("recommend.refit_interval must not be negative, got %s", c.Recommend.RefitInterval)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}

	if c.TMDB.Token == "" {
		return fmt.Errorf("tmdb.token is required when tmdb.enabled is true " +
			"(set MOVIEMIXER_TMDB_TOKEN or TMDB_TOKEN)")
	}
	if !strings.HasPrefix(c.TMDB.BaseURL, "http://") && !strings.HasPrefix(c.TMDB.BaseURL, "https://") {
		return fmt.Errorf("tmdb.base_url must be an http(s) URL, got %q", c.TMDB.BaseURL)
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("tmdb.timeout must be positive, got %s", c.TMDB.Timeout)
	}
	if c.TMDB.RequestsPerSecond <= 0 {
		return fmt.Errorf("tmdb.requests_per_second must be positive, got %f", c.TMDB.RequestsPerSecond)
	}
	if c.TMDB.CacheTTL < 0 {
		return fmt.Errorf("tmdb.cache_ttl must not be negative, got %s", c.TMDB.CacheTTL)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.RateLimitReqs < 1 {
		return fmt.Errorf("api.rate_limit_reqs must be at least 1, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}
