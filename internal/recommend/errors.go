// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure taxonomy. Callers match with
// errors.Is; the structured variants below carry the offending movie ID.
var (
	// ErrInvalidCatalog indicates Fit was called with a catalog that
	// violates the input contract (empty, or duplicate identifiers).
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrNotFound indicates Recommend was called with a movie ID absent
	// from the fitted index.
	ErrNotFound = errors.New("movie not found")

	// ErrNotFitted indicates Recommend was called before any successful Fit.
	ErrNotFitted = errors.New("engine not fitted")
)

// DuplicateIDError reports a catalog containing the same movie ID twice.
// It matches ErrInvalidCatalog via errors.Is.
type DuplicateIDError struct {
	MovieID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("invalid catalog: duplicate movie ID %d", e.MovieID)
}

// Is reports whether this error matches ErrInvalidCatalog.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// InvalidIDError reports a catalog entry with a non-positive movie ID.
// It matches ErrInvalidCatalog via errors.Is.
type InvalidIDError struct {
	MovieID int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid catalog: movie ID %d is not positive", e.MovieID)
}

// Is reports whether this error matches ErrInvalidCatalog.
func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NotFoundError reports a movie ID missing from the fitted index.
// It matches ErrNotFound via errors.Is.
type NotFoundError struct {
	MovieID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %d not found in fitted catalog", e.MovieID)
}

// Is reports whether this error matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
