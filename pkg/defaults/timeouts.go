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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// RecipeHandlerTimeout is the timeout for recipe listing requests.
	RecipeHandlerTimeout = 10 * time.Second

	// PowerHandlerTimeout is the timeout for power computation requests.
	PowerHandlerTimeout = 5 * time.Second

	// CatalogCacheTTL is the cache duration advertised on catalog responses.
	// The catalog is append-only and fully built before serving.
	CatalogCacheTTL = 10 * time.Minute
)

// Catalog loading.
const (
	// CatalogLoadTimeout bounds loading of the embedded recipe catalog.
	CatalogLoadTimeout = 30 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Game time.
const (
	// TicksPerSecond is the game simulation rate; one tick is 0.05 seconds.
	TicksPerSecond = 20
)
