// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

// SynthesizeHybrid combines two feature vectors of the same vector space
// into a single query vector by element-wise minimum.
//
// All TF-IDF weights are non-negative, so the minimum acts as a soft
// intersection: a dimension contributes only when both movies have mass
// there, capped at the smaller of the two weights. Shared themes are
// rewarded over either movie's unique themes; this is deliberately not an
// average or a sum. The hybrid vector is not renormalized.
func SynthesizeHybrid(a, b SparseVector) SparseVector {
	if a.IsZero() || b.IsZero() {
		return SparseVector{}
	}

	// Merge walk over the ascending index slices; only dimensions present
	// in both vectors survive.
	var (
		indices []int
		weights []float64
		i, j    int
	)
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			i++
		case a.Indices[i] > b.Indices[j]:
			j++
		default:
			w := a.Weights[i]
			if b.Weights[j] < w {
				w = b.Weights[j]
			}
			if w > 0 {
				indices = append(indices, a.Indices[i])
				weights = append(weights, w)
			}
			i++
			j++
		}
	}

	return SparseVector{Indices: indices, Weights: weights}
}
