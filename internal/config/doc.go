// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package config provides layered configuration for Movie Mixer.
//
// Configuration is loaded with koanf v2 from three sources in increasing
// priority: built-in defaults, an optional YAML config file, and
// MOVIEMIXER_-prefixed environment variables. See LoadWithKoanf for the
// environment variable naming scheme.
//
// All configuration is validated on load; an invalid configuration fails
// startup rather than degrading silently.
package config
