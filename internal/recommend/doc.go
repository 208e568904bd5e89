// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

// Package recommend implements the pair-based hybrid recommendation engine.
//
// # Architecture
//
// Given two movies the user likes, the engine builds a single query vector
// representing what the pair has in common and ranks the whole catalog
// against it:
//
//  1. Normalize: genre and keyword tag lists (JSON arrays of named objects)
//     become flat whitespace-joined token strings.
//  2. Compose: the two tag strings are concatenated into one feature
//     document per movie.
//  3. Vectorize: a TF-IDF model is fitted over the corpus of feature
//     documents, producing one L2-normalized sparse vector per movie.
//  4. Synthesize: the two selected movies' vectors are combined by
//     element-wise minimum, a soft intersection that keeps only themes
//     both movies share, capped at the weaker signal.
//  5. Rank: cosine similarity between the hybrid vector and every catalog
//     vector, excluding the two inputs, descending by score with ties
//     broken by ascending catalog position.
//
// # Lifecycle
//
// Fit builds the vocabulary, the vector matrix, and the ID index together
// and swaps them in atomically; a later Fit with a different catalog
// replaces all engine state. Recommend allocates only per-call state and is
// safe to call concurrently against a fitted engine.
//
// # Design Principles
//
//   - Deterministic: identical catalogs in identical order produce
//     identical vocabularies, vectors, and rankings.
//   - No hidden state: all model state is owned by an Engine instance with
//     an explicit Fit lifecycle.
//   - Typed failures: unknown movie IDs and invalid catalogs surface as
//     typed errors, never as degraded results.
//   - No precomputed similarity matrix: only the per-query score vector is
//     computed, avoiding O(N^2) memory.
package recommend
