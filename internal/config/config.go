// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package config

import (
	"time"
)

// Config is the root configuration for the Movie Mixer server.
// It is loaded via koanf with layered sources (defaults, YAML file,
// environment variables); see LoadWithKoanf.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	API       APIConfig       `koanf:"api"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ReadTimeout bounds request read time.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response write time.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the log output format (json or console).
	Format string `koanf:"format"`

	// Caller includes caller file:line in log output.
	Caller bool `koanf:"caller"`
}

// CatalogConfig contains catalog data source settings.
type CatalogConfig struct {
	// MoviesPath is the path to the movies CSV file.
	MoviesPath string `koanf:"movies_path"`

	// KeywordsPath is the path to the keywords CSV file.
	KeywordsPath string `koanf:"keywords_path"`

	// MinVoteCount filters out movies with fewer votes.
	MinVoteCount int `koanf:"min_vote_count"`
}

// RecommendConfig contains recommendation engine settings.
type RecommendConfig struct {
	// DefaultK is the number of recommendations returned when the
	// caller does not specify one.
	DefaultK int `koanf:"default_k"`

	// MaxK caps the number of recommendations a caller may request.
	MaxK int `koanf:"max_k"`

	// RefitOnStartup fits the engine before the server starts serving.
	RefitOnStartup bool `koanf:"refit_on_startup"`

	// RefitInterval is how often the catalog is reloaded and the
	// engine refitted. Zero disables periodic refits.
	RefitInterval time.Duration `koanf:"refit_interval"`
}

// TMDBConfig contains TMDB poster API settings.
type TMDBConfig struct {
	// Enabled toggles poster resolution. When disabled, poster URLs
	// are empty in API responses.
	Enabled bool `koanf:"enabled"`

	// BaseURL is the TMDB API base URL.
	BaseURL string `koanf:"base_url"`

	// Token is the TMDB API bearer token.
	Token string `koanf:"token"`

	// PosterSize is the requested poster size (e.g. w342, w500, original).
	PosterSize string `koanf:"poster_size"`

	// Timeout bounds a single TMDB API request.
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond limits outbound TMDB request rate.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// CacheTTL is how long resolved poster URLs are cached.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// APIConfig contains HTTP API settings.
type APIConfig struct {
	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is the per-IP request budget per window.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// DefaultPageSize is the default movie list page size.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps the movie list page size.
	MaxPageSize int `koanf:"max_page_size"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8480,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			MoviesPath:   "assets/movies.csv",
			KeywordsPath: "assets/keywords.csv",
			MinVoteCount: 1000,
		},
		Recommend: RecommendConfig{
			DefaultK:       3,
			MaxK:           50,
			RefitOnStartup: true,
			RefitInterval:  0, // catalog files are static; periodic refit is opt-in
		},
		TMDB: TMDBConfig{
			Enabled:           false,
			BaseURL:           "https://api.themoviedb.org/3",
			Token:             "",
			PosterSize:        "w500",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 4,
			CacheTTL:          24 * time.Hour,
		},
		API: APIConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}

// Addr returns the host:port listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return joinHostPort(c.Host, c.Port)
}
