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

// Package server provides the HTTP runtime shared by the gtpower daemon.
//
// A Server owns the listener, the middleware chain and the operational
// endpoints. Domain handlers are supplied by the caller and registered with
// WithHandler:
//
//	s := server.New(
//	    server.WithName("gtpowerd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/tiers":   tiers,
//	        "/v1/recipes": recipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// # Middleware
//
// Every domain handler runs behind, in order: metrics, API version
// negotiation, request ID assignment, panic recovery, token bucket rate
// limiting (golang.org/x/time/rate) and access logging.
//
// # Operational Endpoints
//
//   - GET /health: liveness, always 200 while the process serves
//   - GET /ready: readiness, 503 until Start has bound the listener
//   - GET /metrics: Prometheus exposition
//
// API metrics are labelled by the matched route pattern, never the raw path.
// Error responses are counted by error code in gtpower_api_errors_total.
//
// # Configuration
//
// Defaults come from NewConfig and may be overridden with WithConfig,
// WithRateLimit or the PORT, SHUTDOWN_TIMEOUT_SECONDS, GTPOWER_RATE_LIMIT and
// GTPOWER_RATE_LIMIT_BURST environment variables.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Structured
// error codes from pkg/errors map onto HTTP statuses with HTTPStatusFromCode;
// data errors such as OUT_OF_RANGE and INVALID_RECIPE_COST become 400.
package server
