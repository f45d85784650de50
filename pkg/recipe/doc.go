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

// Package recipe holds machine recipes in an append-only Catalog.
//
// Recipes are assembled with a Builder and costed by a power.Model:
//
//	c := recipe.NewCatalog(power.NewModel(tier.Default()))
//	h, err := c.RegisterBuilder(recipe.NewBuilder().
//	    Category("mixer").
//	    ItemInputs(recipe.Item("dustPolyAluminiumChloride", 1)).
//	    FluidInputs(recipe.Fluid("Water", 1000)).
//	    FluidOutputs(recipe.Fluid("PolyAluminiumChlorideSolution", 1000)).
//	    EUt(1920).
//	    Duration(20))
//
// A Definition never changes after Build. The catalog has no removal or
// update operation; a correction is a new registration.
//
// # Queries
//
// FindByTierCeiling, FindByCategory and All return lazy iter sequences in
// registration order. FindByOutputChance lists chance-weighted item outputs
// in the order they were given to the builder.
//
// # Loading
//
// LoadYAML, LoadFile and LoadFS read recipe files of the form:
//
//	recipes:
//	  - category: assembler
//	    itemInputs:
//	      - {item: dustActivatedCarbon, quantity: 64}
//	    itemOutputs:
//	      - {item: ActivatedCarbonFilterMesh, quantity: 1, chance: 1000}
//	    voltage: IV      # or eut: 7680
//	    seconds: 10      # or duration: 200 (ticks)
//	    metadata:
//	      baseChance: 70.0
//
// Every recipe in a load is built before any is registered. DefaultCatalog
// returns the built-in purified water chain, loaded once per process.
//
// # Concurrency
//
// Registration is single-writer and must complete before queries begin.
// After that the catalog may be read from any number of goroutines.
package recipe
