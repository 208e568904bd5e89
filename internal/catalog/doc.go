// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package catalog loads the movie catalog from CSV files using DuckDB's
// read_csv table function.
//
// The movies file carries the core metadata (id, title, overview,
// vote_average, vote_count, genres); the optional keywords file carries
// the per-movie keyword lists and is joined by movie ID. Both the genres
// and keywords columns hold the raw serialized tag lists; parsing them is
// the recommendation engine's job, not the loader's.
//
// DuckDB does the heavy lifting: quoted fields with embedded JSON, type
// coercion via TRY_CAST, the vote-count popularity filter, and a stable
// ascending-ID ordering all happen in one SQL statement over an in-memory
// database. Rows whose ID fails to parse are dropped; duplicate IDs keep
// the first occurrence so the engine's catalog contract holds.
package catalog
