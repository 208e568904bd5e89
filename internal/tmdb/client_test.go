// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviemixer/internal/config"
)

// newTestServer serves a minimal TMDB API surface and counts requests per
// path.
func newTestServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/configuration", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization header = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images": {"secure_base_url": "https://cdn.example.org/img/"}}`))
	})
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 603, "poster_path": "/matrix.jpg"}`))
	})
	mux.HandleFunc("/movie/604", func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 604, "poster_path": null}`))
	})
	mux.HandleFunc("/movie/999", func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		http.Error(w, `{"status_message": "not found"}`, http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(&config.TMDBConfig{
		Enabled:           true,
		BaseURL:           baseURL,
		Token:             "test-token",
		PosterSize:        "w500",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		CacheTTL:          time.Minute,
	}, zerolog.Nop())
}

func TestPosterURL(t *testing.T) {
	var requests atomic.Int64
	server := newTestServer(t, &requests)
	c := newTestClient(t, server.URL)

	url, err := c.PosterURL(context.Background(), 603)
	if err != nil {
		t.Fatalf("PosterURL() error = %v", err)
	}
	want := "https://cdn.example.org/img/w500/matrix.jpg"
	if url != want {
		t.Errorf("PosterURL() = %q, want %q", url, want)
	}
}

func TestPosterURLCached(t *testing.T) {
	var requests atomic.Int64
	server := newTestServer(t, &requests)
	c := newTestClient(t, server.URL)

	first, err := c.PosterURL(context.Background(), 603)
	if err != nil {
		t.Fatalf("PosterURL() error = %v", err)
	}
	after := requests.Load()

	second, err := c.PosterURL(context.Background(), 603)
	if err != nil {
		t.Fatalf("cached PosterURL() error = %v", err)
	}
	if second != first {
		t.Errorf("cached PosterURL() = %q, want %q", second, first)
	}
	if got := requests.Load(); got != after {
		t.Errorf("cached lookup made %d extra requests, want 0", got-after)
	}
}

func TestPosterURLNoPoster(t *testing.T) {
	var requests atomic.Int64
	server := newTestServer(t, &requests)
	c := newTestClient(t, server.URL)

	url, err := c.PosterURL(context.Background(), 604)
	if err != nil {
		t.Fatalf("PosterURL() error = %v", err)
	}
	if url != "" {
		t.Errorf("PosterURL() = %q, want empty for a movie without a poster", url)
	}

	// The absence is cached too.
	after := requests.Load()
	if _, err := c.PosterURL(context.Background(), 604); err != nil {
		t.Fatalf("cached PosterURL() error = %v", err)
	}
	if got := requests.Load(); got != after {
		t.Errorf("cached no-poster lookup made %d extra requests, want 0", got-after)
	}
}

func TestPosterURLUpstreamError(t *testing.T) {
	var requests atomic.Int64
	server := newTestServer(t, &requests)
	c := newTestClient(t, server.URL)

	_, err := c.PosterURL(context.Background(), 999)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("PosterURL() error = %v, want ErrUnexpectedStatus", err)
	}
}

func TestPosterURLDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TMDBConfig
	}{
		{"disabled flag", config.TMDBConfig{Enabled: false, Token: "test-token"}},
		{"missing token", config.TMDBConfig{Enabled: true, Token: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&tt.cfg, zerolog.Nop())
			if c.Enabled() {
				t.Error("Enabled() = true, want false")
			}
			url, err := c.PosterURL(context.Background(), 603)
			if err != nil {
				t.Fatalf("PosterURL() error = %v", err)
			}
			if url != "" {
				t.Errorf("PosterURL() = %q, want empty for disabled client", url)
			}
		})
	}
}

func TestImageBaseURLFallback(t *testing.T) {
	// Configuration endpoint down: poster resolution still works via the
	// default image host.
	mux := http.NewServeMux()
	mux.HandleFunc("/configuration", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusInternalServerError)
	})
	mux.HandleFunc("/movie/603", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 603, "poster_path": "/matrix.jpg"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := newTestClient(t, server.URL)

	url, err := c.PosterURL(context.Background(), 603)
	if err != nil {
		t.Fatalf("PosterURL() error = %v", err)
	}
	want := defaultImageBaseURL + "w500/matrix.jpg"
	if url != want {
		t.Errorf("PosterURL() = %q, want %q", url, want)
	}
}

func TestPosterCacheTTL(t *testing.T) {
	pc := newPosterCache(time.Minute)

	if _, ok := pc.get(1); ok {
		t.Error("get() on empty cache reported a hit")
	}

	pc.set(1, "https://cdn.example.org/img/w500/a.jpg")
	url, ok := pc.get(1)
	if !ok || url != "https://cdn.example.org/img/w500/a.jpg" {
		t.Errorf("get() = (%q, %v), want fresh hit", url, ok)
	}

	// A non-positive TTL expires entries immediately.
	expired := newPosterCache(-time.Second)
	expired.set(1, "stale")
	if _, ok := expired.get(1); ok {
		t.Error("get() returned an expired entry")
	}
}

func TestPosterCacheSweep(t *testing.T) {
	pc := newPosterCache(-time.Second)
	pc.set(1, "a")
	pc.set(2, "b") // sweeps entry 1 while writing

	if got := pc.size(); got != 1 {
		t.Errorf("size() = %d after sweep, want 1", got)
	}
}
