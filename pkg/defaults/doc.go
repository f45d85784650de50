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

// Package defaults provides centralized configuration constants for gtpower.
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Catalog: For loading the embedded recipe catalog
//
// Game-time constants (ticks per second) live here as well so that the power
// display and the recipe loader agree on the conversion.
//
// # Usage
//
//	import "github.com/gtnh/gtpower/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
//	defer cancel()
package defaults
