// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine metrics

	FitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviemixer_fit_duration_seconds",
			Help:    "Duration of engine fit operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FitTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemixer_fit_total",
			Help: "Total number of engine fit operations",
		},
		[]string{"result"}, // "success", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviemixer_recommend_duration_seconds",
			Help:    "Duration of recommend operations in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	RecommendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemixer_recommend_total",
			Help: "Total number of recommend operations",
		},
		[]string{"result"}, // "success", "not_found", "not_fitted", "error"
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviemixer_catalog_size",
			Help: "Number of movies in the fitted catalog",
		},
	)

	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviemixer_vocabulary_size",
			Help: "Number of terms in the fitted TF-IDF vocabulary",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviemixer_model_version",
			Help: "Version counter of the fitted model, incremented on each fit",
		},
	)

	// HTTP metrics

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviemixer_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// TMDB client metrics

	TMDBRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemixer_tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"operation", "result"}, // result: "success", "failure", "rejected"
	)

	TMDBPosterCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemixer_tmdb_poster_cache_hits_total",
			Help: "Total number of poster URL cache hits",
		},
	)

	TMDBPosterCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviemixer_tmdb_poster_cache_misses_total",
			Help: "Total number of poster URL cache misses",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moviemixer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviemixer_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// ObserveFit records a completed fit operation.
func ObserveFit(duration time.Duration, err error) {
	FitDuration.Observe(duration.Seconds())
	if err != nil {
		FitTotal.WithLabelValues("error").Inc()
		return
	}
	FitTotal.WithLabelValues("success").Inc()
}

// ObserveRecommend records a completed recommend operation.
func ObserveRecommend(duration time.Duration, result string) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendTotal.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest records a completed HTTP request.
func ObserveHTTPRequest(route, method, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(route, method, status).Observe(duration.Seconds())
}
