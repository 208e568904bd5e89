// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"math"
	"testing"
)

// rankFixture builds a small unit-length vector set over 3 dimensions.
// Row norms matter: rankTopN assumes rows are unit length or zero.
func rankFixture() []SparseVector {
	unit := func(indices []int, weights []float64) SparseVector {
		var norm float64
		for _, w := range weights {
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for i := range weights {
			weights[i] /= norm
		}
		return SparseVector{Indices: indices, Weights: weights}
	}

	return []SparseVector{
		unit([]int{0, 1}, []float64{1, 1}),    // row 0
		unit([]int{0}, []float64{1}),          // row 1: pure dim 0
		unit([]int{2}, []float64{1}),          // row 2: orthogonal
		unit([]int{0, 2}, []float64{1, 1}),    // row 3
		{},                                    // row 4: zero vector
	}
}

func TestRankTopNOrdering(t *testing.T) {
	vectors := rankFixture()
	hybrid := SparseVector{Indices: []int{0}, Weights: []float64{0.5}}

	// Scores against a query on dim 0: row 1 = 1.0, rows 0 and 3 =
	// 1/sqrt(2), rows 2 and 4 = 0. The hybrid norm cancels out.
	got := rankTopN(vectors, 3, hybrid, map[int]struct{}{}, 5)

	wantPositions := []int{1, 0, 3, 2, 4}
	if len(got) != len(wantPositions) {
		t.Fatalf("rankTopN returned %d entries, want %d", len(got), len(wantPositions))
	}
	for i, want := range wantPositions {
		if got[i].position != want {
			t.Errorf("rank %d: position = %d, want %d", i, got[i].position, want)
		}
	}

	if !almostEqual(got[0].score, 1.0) {
		t.Errorf("top score = %f, want 1.0", got[0].score)
	}
	invSqrt2 := 1 / math.Sqrt(2)
	if !almostEqual(got[1].score, invSqrt2) || !almostEqual(got[2].score, invSqrt2) {
		t.Errorf("ranks 1-2 scores = %f, %f, want both %f", got[1].score, got[2].score, invSqrt2)
	}
	for i := 1; i < len(got); i++ {
		if got[i].score > got[i-1].score {
			t.Errorf("scores increase at rank %d: %f > %f", i, got[i].score, got[i-1].score)
		}
	}
}

func TestRankTopNTieBreakByPosition(t *testing.T) {
	// Rows 0 and 3 tie exactly; ascending position decides.
	vectors := rankFixture()
	hybrid := SparseVector{Indices: []int{0}, Weights: []float64{1}}

	got := rankTopN(vectors, 3, hybrid, map[int]struct{}{1: {}}, 2)

	if len(got) != 2 {
		t.Fatalf("rankTopN returned %d entries, want 2", len(got))
	}
	if got[0].position != 0 || got[1].position != 3 {
		t.Errorf("tied positions ranked as [%d, %d], want [0, 3]", got[0].position, got[1].position)
	}
}

func TestRankTopNExclusion(t *testing.T) {
	vectors := rankFixture()
	hybrid := SparseVector{Indices: []int{0}, Weights: []float64{1}}
	exclude := map[int]struct{}{0: {}, 1: {}}

	got := rankTopN(vectors, 3, hybrid, exclude, 5)

	if len(got) != 3 {
		t.Fatalf("rankTopN returned %d entries, want 3 (5 rows minus 2 excluded)", len(got))
	}
	for _, sp := range got {
		if _, bad := exclude[sp.position]; bad {
			t.Errorf("excluded position %d leaked into results", sp.position)
		}
	}
	// Row 3 is the only remaining row with mass on dim 0.
	if got[0].position != 3 {
		t.Errorf("top position = %d, want 3", got[0].position)
	}
}

func TestRankTopNZeroHybrid(t *testing.T) {
	// A zero query vector means every candidate scores 0; ordering falls
	// back to catalog position.
	vectors := rankFixture()

	got := rankTopN(vectors, 3, SparseVector{}, map[int]struct{}{0: {}}, 10)

	wantPositions := []int{1, 2, 3, 4}
	if len(got) != len(wantPositions) {
		t.Fatalf("rankTopN returned %d entries, want %d", len(got), len(wantPositions))
	}
	for i, want := range wantPositions {
		if got[i].position != want {
			t.Errorf("rank %d: position = %d, want %d", i, got[i].position, want)
		}
		if got[i].score != 0 {
			t.Errorf("rank %d: score = %f, want 0", i, got[i].score)
		}
	}
}

func TestRankTopNClamping(t *testing.T) {
	vectors := rankFixture()
	hybrid := SparseVector{Indices: []int{0}, Weights: []float64{1}}

	tests := []struct {
		name    string
		exclude map[int]struct{}
		topN    int
		wantLen int
	}{
		{"topN within bounds", map[int]struct{}{0: {}}, 2, 2},
		{"topN exceeds available", map[int]struct{}{0: {}, 1: {}}, 100, 3},
		{"topN equals available", map[int]struct{}{0: {}}, 4, 4},
		{"zero topN", map[int]struct{}{}, 0, 0},
		{"everything excluded", map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rankTopN(vectors, 3, hybrid, tt.exclude, tt.topN)
			if len(got) != tt.wantLen {
				t.Errorf("rankTopN returned %d entries, want %d", len(got), tt.wantLen)
			}
		})
	}
}
