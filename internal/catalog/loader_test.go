// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/config"
)

const moviesCSV = `id,title,overview,vote_average,vote_count,genres
3,Letters Home,Wartime romance.,7.8,2100,"[{""id"": 10749, ""name"": ""Romance""}, {""id"": 18, ""name"": ""Drama""}]"
1,Inferno Run,A desperate escape.,7.4,5200,"[{""id"": 28, ""name"": ""Action""}, {""id"": 12, ""name"": ""Adventure""}]"
2,Sky Pirates,Airship heists.,6.9,450,"[{""id"": 28, ""name"": ""Action""}]"
1,Inferno Run Duplicate,Same ID again.,1.0,9999,"[]"
abc,Broken Row,Unparseable ID.,5.0,9999,"[]"
4,Crossfire Hearts,Love under fire.,6.2,1800,
`

const keywordsCSV = `id,keywords
1,"[{""id"": 1, ""name"": ""thriller""}]"
3,"[{""id"": 1, ""name"": ""thriller""}, {""id"": 2, ""name"": ""war""}]"
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func newTestLoader(t *testing.T, movies, keywords string, minVotes int) *Loader {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.CatalogConfig{
		MoviesPath:   writeTestFile(t, dir, "movies.csv", movies),
		MinVoteCount: minVotes,
	}
	if keywords != "" {
		cfg.KeywordsPath = writeTestFile(t, dir, "keywords.csv", keywords)
	}
	return NewLoader(cfg, zerolog.Nop())
}

func TestLoad(t *testing.T) {
	l := newTestLoader(t, moviesCSV, keywordsCSV, 1000)

	movies, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Movie 2 falls under the vote-count filter, the duplicate and the
	// unparseable row are dropped, and the rest come back in ID order.
	wantIDs := []int{1, 3, 4}
	if len(movies) != len(wantIDs) {
		t.Fatalf("Load() returned %d movies, want %d: %+v", len(movies), len(wantIDs), movies)
	}
	for i, want := range wantIDs {
		if movies[i].ID != want {
			t.Errorf("movie %d: ID = %d, want %d", i, movies[i].ID, want)
		}
	}

	first := movies[0]
	if first.Title != "Inferno Run" {
		t.Errorf("Title = %q, want %q (first occurrence wins for duplicate IDs)", first.Title, "Inferno Run")
	}
	if first.Overview != "A desperate escape." {
		t.Errorf("Overview = %q, want %q", first.Overview, "A desperate escape.")
	}
	if first.VoteAverage != 7.4 {
		t.Errorf("VoteAverage = %f, want 7.4", first.VoteAverage)
	}
	if !strings.Contains(first.RawGenres, `"Action"`) {
		t.Errorf("RawGenres = %q, want the raw serialized genre list", first.RawGenres)
	}
	if !strings.Contains(first.RawKeywords, `"thriller"`) {
		t.Errorf("RawKeywords = %q, want the joined keyword list", first.RawKeywords)
	}
}

func TestLoadKeywordFallbacks(t *testing.T) {
	l := newTestLoader(t, moviesCSV, keywordsCSV, 1000)

	movies, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Movie 4 has no keywords row and an empty genres cell; both fall
	// back to the empty serialized list.
	last := movies[len(movies)-1]
	if last.ID != 4 {
		t.Fatalf("last movie ID = %d, want 4", last.ID)
	}
	if last.RawKeywords != "[]" {
		t.Errorf("RawKeywords = %q, want %q for a movie without a keywords row", last.RawKeywords, "[]")
	}
	if last.RawGenres != "[]" {
		t.Errorf("RawGenres = %q, want %q for an empty genres cell", last.RawGenres, "[]")
	}
}

func TestLoadWithoutKeywordsFile(t *testing.T) {
	l := newTestLoader(t, moviesCSV, "", 0)

	movies, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, m := range movies {
		if m.RawKeywords != "[]" {
			t.Errorf("movie %d: RawKeywords = %q, want %q without a keywords file",
				m.ID, m.RawKeywords, "[]")
		}
	}
}

func TestLoadMissingKeywordsFileDegrades(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.CatalogConfig{
		MoviesPath:   writeTestFile(t, dir, "movies.csv", moviesCSV),
		KeywordsPath: filepath.Join(dir, "missing-keywords.csv"),
		MinVoteCount: 0,
	}
	l := NewLoader(cfg, zerolog.Nop())

	movies, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v, want genres-only degradation", err)
	}
	if len(movies) == 0 {
		t.Fatal("Load() returned no movies")
	}
}

func TestLoadVoteCountFilter(t *testing.T) {
	tests := []struct {
		name     string
		minVotes int
		wantIDs  []int
	}{
		{"no filter", 0, []int{1, 2, 3, 4}},
		{"moderate filter", 1000, []int{1, 3, 4}},
		{"strict filter", 3000, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLoader(t, moviesCSV, "", tt.minVotes)
			movies, err := l.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(movies) != len(tt.wantIDs) {
				t.Fatalf("Load() returned %d movies, want %d", len(movies), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if movies[i].ID != want {
					t.Errorf("movie %d: ID = %d, want %d", i, movies[i].ID, want)
				}
			}
		})
	}
}

func TestLoadAllFiltered(t *testing.T) {
	l := newTestLoader(t, moviesCSV, "", 1_000_000)

	_, err := l.Load(context.Background())
	if !errors.Is(err, ErrNoMovies) {
		t.Errorf("Load() error = %v, want ErrNoMovies", err)
	}
}

func TestLoadMissingMoviesFile(t *testing.T) {
	cfg := &config.CatalogConfig{
		MoviesPath: filepath.Join(t.TempDir(), "missing.csv"),
	}
	l := NewLoader(cfg, zerolog.Nop())

	if _, err := l.Load(context.Background()); err == nil {
		t.Error("Load() error = nil, want missing-file error")
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.csv", "'plain.csv'"},
		{"o'brien.csv", "'o''brien.csv'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
