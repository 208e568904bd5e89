// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package tmdb

import (
	"sync"
	"time"

	"github.com/tomtom215/moviemixer/internal/metrics"
)

// cachedPoster is a resolved poster URL with its expiry. An empty URL is a
// valid cached value: it records that the movie has no poster.
type cachedPoster struct {
	url     string
	expires time.Time
}

// posterCache is a TTL cache of resolved poster URLs keyed by movie ID.
type posterCache struct {
	mu      sync.RWMutex
	entries map[int]cachedPoster
	ttl     time.Duration
}

func newPosterCache(ttl time.Duration) *posterCache {
	return &posterCache{
		entries: make(map[int]cachedPoster),
		ttl:     ttl,
	}
}

// get returns the cached URL for a movie ID if present and fresh.
func (pc *posterCache) get(movieID int) (string, bool) {
	pc.mu.RLock()
	entry, ok := pc.entries[movieID]
	pc.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		metrics.TMDBPosterCacheMisses.Inc()
		return "", false
	}
	metrics.TMDBPosterCacheHits.Inc()
	return entry.url, true
}

// set stores a resolved URL. Expired entries for other movies are swept
// opportunistically while the write lock is held.
func (pc *posterCache) set(movieID int, url string) {
	now := time.Now()

	pc.mu.Lock()
	defer pc.mu.Unlock()

	for id, entry := range pc.entries {
		if now.After(entry.expires) {
			delete(pc.entries, id)
		}
	}
	pc.entries[movieID] = cachedPoster{url: url, expires: now.Add(pc.ttl)}
}

// size returns the number of cached entries, fresh or not.
func (pc *posterCache) size() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.entries)
}
