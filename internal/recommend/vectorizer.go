// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// SparseVector is an L2-normalized TF-IDF document vector stored as
// parallel slices of ascending dimension indices and their weights.
// A document with no surviving tokens is the zero vector (both slices nil).
type SparseVector struct {
	Indices []int
	Weights []float64
}

// IsZero reports whether the vector has no non-zero dimensions.
func (v SparseVector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the L2 norm of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, w := range v.Weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// At returns the weight at the given dimension, zero if absent.
func (v SparseVector) At(dim int) float64 {
	i := sort.SearchInts(v.Indices, dim)
	if i < len(v.Indices) && v.Indices[i] == dim {
		return v.Weights[i]
	}
	return 0
}

// Vectorizer is a fitted TF-IDF vector space: a vocabulary mapping tokens
// to dimension indices plus the learned inverse-document-frequency
// weights. It is immutable after FitVectorizer returns.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// FitVectorizer fits a TF-IDF model over the ordered document corpus and
// returns the fitted vectorizer together with one vector per document, in
// input order.
//
// Tokens are lowercased runs of two or more word characters; stop words
// are dropped. Vocabulary dimensions follow insertion order of each
// token's first occurrence in the corpus, so identical corpora always
// produce identical vocabularies and vectors. IDF is the smoothed
// log-scaled variant, ln((1+n)/(1+df))+1, and every document vector is
// L2-normalized so cosine similarity between documents reduces to a dot
// product.
func FitVectorizer(docs []string) (*Vectorizer, []SparseVector) {
	v := &Vectorizer{
		vocab: make(map[string]int),
	}

	// Pass 1: tokenize, build the vocabulary, and count document
	// frequencies.
	tokenized := make([][]string, len(docs))
	df := make([]int, 0)
	seen := make(map[int]struct{})

	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		clear(seen)
		for _, tok := range tokens {
			dim, ok := v.vocab[tok]
			if !ok {
				dim = len(v.terms)
				v.vocab[tok] = dim
				v.terms = append(v.terms, tok)
				df = append(df, 0)
			}
			if _, dup := seen[dim]; !dup {
				seen[dim] = struct{}{}
				df[dim]++
			}
		}
	}

	// Learn smoothed IDF weights.
	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for dim, count := range df {
		v.idf[dim] = math.Log((1+n)/(1+float64(count))) + 1
	}

	// Pass 2: weight each document by TF x IDF and normalize to unit length.
	vectors := make([]SparseVector, len(docs))
	counts := make(map[int]int)
	for i, tokens := range tokenized {
		clear(counts)
		for _, tok := range tokens {
			counts[v.vocab[tok]]++
		}
		vectors[i] = v.weigh(counts)
	}

	return v, vectors
}

// weigh converts per-dimension term counts into a unit-length TF-IDF
// vector with ascending dimension order.
func (v *Vectorizer) weigh(counts map[int]int) SparseVector {
	if len(counts) == 0 {
		return SparseVector{}
	}

	dims := make([]int, 0, len(counts))
	for dim := range counts {
		dims = append(dims, dim)
	}
	sort.Ints(dims)

	weights := make([]float64, len(dims))
	var norm float64
	for i, dim := range dims {
		w := float64(counts[dim]) * v.idf[dim]
		weights[i] = w
		norm += w * w
	}

	norm = math.Sqrt(norm)
	for i := range weights {
		weights[i] /= norm
	}

	return SparseVector{Indices: dims, Weights: weights}
}

// VocabularySize returns the number of vocabulary terms (the vector
// dimensionality).
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// Term returns the vocabulary token for a dimension index.
func (v *Vectorizer) Term(dim int) string {
	return v.terms[dim]
}

// Dimension returns the dimension index for a token and whether the token
// is in the vocabulary.
func (v *Vectorizer) Dimension(token string) (int, bool) {
	dim, ok := v.vocab[token]
	return dim, ok
}

// IDF returns the learned inverse-document-frequency weight for a
// dimension index.
func (v *Vectorizer) IDF(dim int) float64 {
	return v.idf[dim]
}

// tokenize lowercases the document and extracts word tokens, dropping
// stop words. A token is a run of two or more letters, digits, or
// underscores; shorter runs and punctuation are boundaries.
func tokenize(doc string) []string {
	doc = strings.ToLower(doc)

	var tokens []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= 2 {
			tok := doc[start:end]
			if runeLen(tok) >= 2 && !isStopWord(tok) {
				tokens = append(tokens, tok)
			}
		}
		start = -1
	}

	for i, r := range doc {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(doc))

	return tokens
}

// isWordRune reports whether r is a word character (letter, digit, or
// underscore).
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// runeLen counts runes without allocating.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
