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

package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtpower_recipe_registrations_total",
			Help: "Total number of recipes registered into a catalog",
		},
	)
	recipeRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtpower_recipe_rejections_total",
			Help: "Total number of recipes rejected at build or registration, by error code",
		},
		[]string{"code"},
	)
	recipeCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtpower_recipe_collisions_total",
			Help: "Total number of registrations whose inputs match an earlier recipe in the same category",
		},
	)
	recipeQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtpower_recipe_queries_total",
			Help: "Total number of catalog queries, by kind",
		},
		[]string{"kind"},
	)

	// Catalog loading
	catalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gtpower_recipe_catalog_load_duration_seconds",
			Help:    "Duration of recipe catalog loads in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		},
	)
)
