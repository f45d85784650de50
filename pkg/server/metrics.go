// Copyright (c) 2026, The gtpower Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute labels requests the mux did not route to a pattern.
const unmatchedRoute = "unmatched"

var (
	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtpower_api_requests_total",
			Help: "API requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gtpower_api_request_duration_seconds",
			Help: "API request latency by route",
			// catalog queries are in-memory; most answer well under 10ms
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1},
		},
		[]string{"route"},
	)

	apiResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gtpower_api_response_bytes",
			Help:    "API response body size by route",
			Buckets: prometheus.ExponentialBuckets(256, 4, 7),
		},
		[]string{"route"},
	)

	apiInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gtpower_api_requests_in_flight",
			Help: "API requests currently being served",
		},
	)

	// apiErrors counts error responses by gtpower error code, e.g.
	// OUT_OF_RANGE for a bad tier or INVALID_RECIPE_COST for a negative EU/t.
	apiErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtpower_api_errors_total",
			Help: "API error responses by error code",
		},
		[]string{"code"},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtpower_rate_limit_rejects_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtpower_panic_recoveries_total",
			Help: "Panics recovered in API handlers",
		},
	)
)

// routeLabel returns the mux pattern that matched r. Raw paths are not used
// as labels so unknown URLs cannot grow the series count.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedRoute
	}
	return r.Pattern
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		apiInFlight.Inc()
		defer apiInFlight.Dec()

		rec := recordResponse(w)
		next.ServeHTTP(rec, r)

		route := routeLabel(r)
		apiRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.Status())).Inc()
		apiLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
		apiResponseBytes.WithLabelValues(route).Observe(float64(rec.Bytes()))
	}
}
