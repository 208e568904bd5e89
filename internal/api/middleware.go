// Movie Mixer - Pair-Based Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemixer

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/moviemixer/internal/logging"
	"github.com/tomtom215/moviemixer/internal/metrics"
)

// requestIDMiddleware honors an incoming X-Request-ID, generates one
// otherwise, attaches it to the logging context, and echoes it on the
// response so clients can correlate.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observeRequests records per-request duration metrics and an access log
// line. The route label uses the Chi route pattern so path parameters do
// not explode metric cardinality.
func (rt *Router) observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		// RoutePattern is populated once routing has happened, so it must
		// be read after the handler runs.
		route := chi.RouteContext(r.Context()).RoutePattern()
		metrics.ObserveHTTPRequest(route, r.Method, strconv.Itoa(ww.Status()), duration)

		logging.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", duration).
			Msg("request served")
	})
}
