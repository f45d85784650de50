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

package power

import (
	"fmt"
	"math"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/tier"
)

// Spec is the computed cost of a recipe. It is a value type and is never
// mutated after Compute returns it.
type Spec struct {
	Tier          tier.Tier `json:"tier" yaml:"tier"`
	EUPerTick     int64     `json:"euPerTick" yaml:"euPerTick"`
	DurationTicks int64     `json:"durationTicks" yaml:"durationTicks"`
}

// TotalEU returns the energy consumed over the full recipe duration,
// saturating at math.MaxInt64.
func (s Spec) TotalEU() int64 {
	return saturatingMul(s.EUPerTick, s.DurationTicks)
}

// saturatingMul multiplies two non-negative values, clamping to math.MaxInt64.
func saturatingMul(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

// Model derives tiers and display figures for recipe costs.
// A Model is immutable and safe for concurrent use.
type Model struct {
	table     *tier.Table
	overclock *Overclocker
	unit      Unit
}

// Option is a functional option for configuring Model instances.
type Option func(*Model)

// WithOverclock enables overclock adjustment in Overclock using oc.
func WithOverclock(oc Overclocker) Option {
	return func(m *Model) {
		m.overclock = &oc
	}
}

// WithUnit sets the energy unit used by Describe. Defaults to EU.
func WithUnit(u Unit) Option {
	return func(m *Model) {
		if u != nil {
			m.unit = u
		}
	}
}

// NewModel creates a Model over table. A nil table selects tier.Default().
func NewModel(table *tier.Table, opts ...Option) *Model {
	if table == nil {
		table = tier.Default()
	}
	m := &Model{
		table: table,
		unit:  EU{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Table returns the tier table backing the model.
func (m *Model) Table() *tier.Table {
	return m.table
}

// Compute validates a raw recipe cost and classifies it into a tier.
// The returned Spec carries the original EU/t and duration.
func (m *Model) Compute(eut, durationTicks int64) (Spec, error) {
	if eut < 0 || durationTicks < 0 {
		return Spec{}, gterrors.NewWithContext(gterrors.ErrCodeInvalidRecipeCost,
			fmt.Sprintf("recipe cost must be non-negative (eut=%d, duration=%d)", eut, durationTicks),
			map[string]any{"eut": eut, "duration": durationTicks})
	}

	return Spec{
		Tier:          m.table.TierFor(eut),
		EUPerTick:     eut,
		DurationTicks: durationTicks,
	}, nil
}

// CanHandle reports whether a machine of observer tier may run a recipe
// costing spec. It is monotonic in observer.
func CanHandle(spec Spec, observer tier.Tier) bool {
	return observer >= spec.Tier
}

// TierString renders observer as "Name (tier)" for machine headers.
func (m *Model) TierString(observer tier.Tier) string {
	return fmt.Sprintf("%s (%d)", m.table.Name(observer), observer)
}
