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

package tier

import (
	"fmt"
	"strconv"
	"strings"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
)

// Tier is a discrete rank classifying machines and recipes by power magnitude.
// Zero is the lowest tier.
type Tier int

// Info describes one row of a Table for display.
type Info struct {
	Tier          Tier   `json:"tier" yaml:"tier"`
	Name          string `json:"name" yaml:"name"`
	Threshold     int64  `json:"threshold" yaml:"threshold"`
	RecipeVoltage int64  `json:"recipeVoltage" yaml:"recipeVoltage"`
}

// Table maps tier indices to their EU/t ceilings.
// A Table is immutable once constructed and safe for concurrent use.
type Table struct {
	thresholds []int64
	names      []string
}

// Option is a functional option for configuring Table instances.
type Option func(*Table)

// WithNames attaches display names to tiers, in tier order.
// Tiers without a name display as "T<n>".
func WithNames(names ...string) Option {
	return func(t *Table) {
		t.names = append([]string(nil), names...)
	}
}

// NewTable creates a Table from per-tier EU/t thresholds.
// Thresholds must be non-empty, non-negative and non-decreasing.
func NewTable(thresholds []int64, opts ...Option) (*Table, error) {
	if len(thresholds) == 0 {
		return nil, gterrors.New(gterrors.ErrCodeInvalidRequest, "tier table requires at least one threshold")
	}

	t := &Table{thresholds: append([]int64(nil), thresholds...)}
	for i, v := range t.thresholds {
		if v < 0 {
			return nil, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("threshold for tier %d is negative", i),
				map[string]any{"tier": i, "threshold": v})
		}
		if i > 0 && v < t.thresholds[i-1] {
			return nil, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("threshold for tier %d is lower than tier %d", i, i-1),
				map[string]any{"tier": i, "threshold": v, "previous": t.thresholds[i-1]})
		}
	}

	for _, opt := range opts {
		opt(t)
	}
	if len(t.names) > len(t.thresholds) {
		return nil, gterrors.New(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("tier table has %d names for %d tiers", len(t.names), len(t.thresholds)))
	}

	return t, nil
}

// Len returns the number of tiers in the table.
func (t *Table) Len() int {
	return len(t.thresholds)
}

// MaxTier returns the highest tier in the table.
func (t *Table) MaxTier() Tier {
	return Tier(len(t.thresholds) - 1)
}

// Contains reports whether tier is a valid index into the table.
func (t *Table) Contains(tier Tier) bool {
	return tier >= 0 && tier <= t.MaxTier()
}

// ThresholdFor returns the EU/t ceiling of tier.
func (t *Table) ThresholdFor(tier Tier) (int64, error) {
	if !t.Contains(tier) {
		return 0, outOfRange(tier, t.MaxTier())
	}
	return t.thresholds[tier], nil
}

// TierFor returns the lowest tier whose threshold is >= eut.
// Values above every threshold clamp to MaxTier.
func (t *Table) TierFor(eut int64) Tier {
	for i, v := range t.thresholds {
		if eut <= v {
			return Tier(i)
		}
	}
	return t.MaxTier()
}

// RecipeVoltage returns the nominal recipe EU/t of tier: 30/32 of the
// threshold, except for tier 0 which uses the threshold itself.
func (t *Table) RecipeVoltage(tier Tier) (int64, error) {
	v, err := t.ThresholdFor(tier)
	if err != nil {
		return 0, err
	}
	if tier == 0 {
		return v, nil
	}
	return v * 30 / 32, nil
}

// Name returns the display name of tier.
func (t *Table) Name(tier Tier) string {
	if tier >= 0 && int(tier) < len(t.names) && t.names[tier] != "" {
		return t.names[tier]
	}
	return "T" + strconv.Itoa(int(tier))
}

// Parse resolves a tier from its name (case-insensitive), its "T<n>" form or
// a bare integer index.
func (t *Table) Parse(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, gterrors.New(gterrors.ErrCodeInvalidRequest, "tier cannot be empty")
	}

	for i := range t.thresholds {
		if strings.EqualFold(t.Name(Tier(i)), s) {
			return Tier(i), nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown tier %q", s), map[string]any{"supported": t.Names()})
	}
	if !t.Contains(Tier(n)) {
		return 0, outOfRange(Tier(n), t.MaxTier())
	}
	return Tier(n), nil
}

// Names returns the display names of all tiers in order.
func (t *Table) Names() []string {
	names := make([]string, t.Len())
	for i := range names {
		names[i] = t.Name(Tier(i))
	}
	return names
}

// Tiers returns a description of every tier in order.
func (t *Table) Tiers() []Info {
	out := make([]Info, 0, t.Len())
	for i, v := range t.thresholds {
		rv, _ := t.RecipeVoltage(Tier(i))
		out = append(out, Info{
			Tier:          Tier(i),
			Name:          t.Name(Tier(i)),
			Threshold:     v,
			RecipeVoltage: rv,
		})
	}
	return out
}

func outOfRange(tier, max Tier) error {
	return gterrors.NewWithContext(gterrors.ErrCodeOutOfRange,
		fmt.Sprintf("tier %d is outside the table range [0, %d]", tier, max),
		map[string]any{"tier": int(tier), "maxTier": int(max)})
}
