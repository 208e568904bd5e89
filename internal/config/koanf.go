// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moviemixer/config.yaml",
	"/etc/moviemixer/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix is the prefix for all Movie Mixer environment variables.
const envPrefix = "MOVIEMIXER_"

// LoadWithKoanf loads configuration using koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting (highest priority)
//
// Environment variables use the MOVIEMIXER_ prefix with underscores mapping
// to nesting, e.g.:
//
//	MOVIEMIXER_SERVER_PORT=9000        -> server.port
//	MOVIEMIXER_TMDB_TOKEN=...          -> tmdb.token
//	MOVIEMIXER_CATALOG_MOVIES_PATH=... -> catalog.movies_path
//
// TMDB_TOKEN is also accepted without the prefix for compatibility with the
// original deployment's .env convention.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Bare TMDB_TOKEN for compatibility with the original .env convention.
	if token := os.Getenv("TMDB_TOKEN"); token != "" {
		if err := k.Set("tmdb.token", token); err != nil {
			return nil, fmt.Errorf("failed to set tmdb.token: %w", err)
		}
	}

	// Env vars arrive as strings; known slice fields are comma-separated.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated
// slices when supplied via environment variables.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// sectionNames are the top-level config sections. The env transform maps the
// first matching section prefix; remaining underscores stay literal so
// multi-word keys like movies_path survive.
var sectionNames = []string{"server", "logging", "catalog", "recommend", "tmdb", "api"}

// envTransformFunc transforms environment variable names to koanf paths.
//
// Examples:
//   - MOVIEMIXER_SERVER_PORT          -> server.port
//   - MOVIEMIXER_CATALOG_MOVIES_PATH  -> catalog.movies_path
//   - MOVIEMIXER_TMDB_POSTER_SIZE     -> tmdb.poster_size
//   - MOVIEMIXER_API_CORS_ORIGINS     -> api.cors_origins
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	for _, section := range sectionNames {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}

	// Unknown section: ignore the variable rather than polluting the tree.
	return ""
}

// joinHostPort formats host and numeric port, handling IPv6 hosts.
func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
