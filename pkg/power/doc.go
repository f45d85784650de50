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

// Package power classifies recipe costs into voltage tiers and renders them
// for display.
//
// A Model wraps a tier.Table. Compute validates a raw EU/t and duration and
// returns a Spec carrying the tier the cost falls into:
//
//	m := power.NewModel(tier.Default())
//	spec, err := m.Compute(480, 100) // HV, 480 EU/t, 100 ticks
//	ok := power.CanHandle(spec, tier.IV)
//
// Describe turns a Spec into "Total", "Usage" and "Time" lines using the
// configured Unit (EU by default, or Steam). FormatDuration renders ticks or
// seconds with English digit grouping.
//
// With WithOverclock, Overclock shows what a higher tier machine would
// consume: every step multiplies EU/t and divides the duration until the
// next step would exceed the machine tier.
//
// HandlePower and HandleTiers expose the model over HTTP.
package power
