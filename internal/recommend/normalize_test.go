// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package recommend

import (
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "single tag",
			raw:  `[{"id": 28, "name": "Action"}]`,
			want: "Action",
		},
		{
			name: "multiple tags preserve order",
			raw:  `[{"id": 28, "name": "Action"}, {"id": 12, "name": "Adventure"}, {"id": 878, "name": "Science Fiction"}]`,
			want: "Action Adventure Science Fiction",
		},
		{
			name: "duplicates are kept",
			raw:  `[{"name": "Action"}, {"name": "Action"}]`,
			want: "Action Action",
		},
		{
			name: "empty string",
			raw:  "",
			want: "",
		},
		{
			name: "empty list sentinel",
			raw:  "[]",
			want: "",
		},
		{
			name: "empty list with surrounding whitespace",
			raw:  "  []  ",
			want: "",
		},
		{
			name: "malformed json",
			raw:  `[{"name": "Action"`,
			want: "",
		},
		{
			name: "not an array",
			raw:  `{"name": "Action"}`,
			want: "",
		},
		{
			name: "element missing name key",
			raw:  `[{"name": "Action"}, {"id": 12}]`,
			want: "",
		},
		{
			name: "name is not a string",
			raw:  `[{"name": 42}]`,
			want: "",
		},
		{
			name: "array of scalars",
			raw:  `[1, 2, 3]`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.raw); got != tt.want {
				t.Errorf("NormalizeTags(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTagsIsPure(t *testing.T) {
	raw := `[{"name": "Drama"}, {"name": "Crime"}]`
	first := NormalizeTags(raw)
	second := NormalizeTags(raw)
	if first != second {
		t.Errorf("NormalizeTags not deterministic: %q vs %q", first, second)
	}
}

func TestComposeDocument(t *testing.T) {
	tests := []struct {
		name     string
		genres   string
		keywords string
		want     string
	}{
		{"both present", "Action Adventure", "spy chase", "Action Adventure spy chase"},
		{"empty keywords", "Action", "", "Action "},
		{"empty genres", "", "heist", " heist"},
		{"both empty", "", "", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeDocument(tt.genres, tt.keywords); got != tt.want {
				t.Errorf("ComposeDocument(%q, %q) = %q, want %q", tt.genres, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestFeatureDocumentDerivedFromTags(t *testing.T) {
	m := Movie{GenreTags: "Action", KeywordTags: "heist"}
	if got := m.FeatureDocument(); got != "Action heist" {
		t.Errorf("FeatureDocument() = %q, want %q", got, "Action heist")
	}

	// Changing the tag fields must change the derived document: it is
	// never stored independently.
	m.KeywordTags = "chase"
	if got := m.FeatureDocument(); got != "Action chase" {
		t.Errorf("FeatureDocument() after change = %q, want %q", got, "Action chase")
	}
}
