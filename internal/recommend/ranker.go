// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"sort"
)

// excludedScore is the sentinel assigned to the query movies' positions.
// Feature vectors are non-negative, so real cosine scores are >= 0 and the
// sentinel can never win a tie against a genuine candidate.
const excludedScore = -1.0

// scoredPosition pairs a catalog row position with its similarity score.
type scoredPosition struct {
	position int
	score    float64
}

// rankTopN scores every catalog vector against the hybrid query vector and
// returns the topN positions by descending cosine similarity.
//
// The rows of the fitted matrix are unit length (or zero), so the cosine
// of row r against the hybrid vector h is dot(r, h)/|h|. The whole score
// vector is computed in one batched pass against a densified copy of h;
// no NxN similarity matrix is ever materialized.
//
// Excluded positions are forced to a sentinel below any attainable score.
// Ties are broken by ascending catalog position, making the ranking fully
// deterministic. The result holds min(topN, len(vectors)-len(exclude))
// entries.
func rankTopN(vectors []SparseVector, dims int, hybrid SparseVector, exclude map[int]struct{}, topN int) []scoredPosition {
	scores := make([]float64, len(vectors))

	hybridNorm := hybrid.Norm()
	if hybridNorm > 0 {
		// Densify the hybrid vector once so each row scores with direct
		// index lookups.
		dense := make([]float64, dims)
		for i, dim := range hybrid.Indices {
			dense[dim] = hybrid.Weights[i]
		}

		for row, vec := range vectors {
			var dot float64
			for i, dim := range vec.Indices {
				dot += vec.Weights[i] * dense[dim]
			}
			scores[row] = dot / hybridNorm
		}
	}

	for pos := range exclude {
		scores[pos] = excludedScore
	}

	ranked := make([]scoredPosition, len(vectors))
	for pos, score := range scores {
		ranked[pos] = scoredPosition{position: pos, score: score}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].position < ranked[j].position
	})

	available := len(vectors) - len(exclude)
	if topN > available {
		topN = available
	}
	if topN < 0 {
		topN = 0
	}

	return ranked[:topN]
}
