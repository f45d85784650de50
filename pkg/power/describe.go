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

// Unit renders energy figures for a machine family.
type Unit interface {
	// Name identifies the unit ("eu", "steam").
	Name() string
	// Total renders the energy consumed over the whole recipe.
	Total(spec Spec) string
	// Rate renders the per-tick consumption.
	Rate(spec Spec) string
}

// EU renders electric machines.
type EU struct{}

func (EU) Name() string { return "eu" }

func (EU) Total(spec Spec) string { return FormatNumber(spec.TotalEU()) + " EU" }

func (EU) Rate(spec Spec) string { return FormatNumber(spec.EUPerTick) + " EU/t" }

// SteamPerEU is the steam cost, in litres, of one EU in steam machines.
const SteamPerEU = 2

// Steam renders steam machines, which consume SteamPerEU litres per EU.
// Figures saturate at math.MaxInt64.
type Steam struct{}

func (Steam) Name() string { return "steam" }

func (Steam) Total(spec Spec) string {
	return FormatNumber(saturatingMul(spec.TotalEU(), SteamPerEU)) + " L"
}

func (Steam) Rate(spec Spec) string {
	return FormatNumber(saturatingMul(spec.EUPerTick, SteamPerEU)) + " L/t"
}

// ParseUnit resolves a unit by name. Unknown names return false.
func ParseUnit(name string) (Unit, bool) {
	switch name {
	case "", "eu":
		return EU{}, true
	case "steam":
		return Steam{}, true
	default:
		return nil, false
	}
}

// Description is the display form of a recipe cost.
type Description struct {
	Spec     Spec   `json:"spec" yaml:"spec"`
	TierName string `json:"tierName" yaml:"tierName"`
	Total    string `json:"total,omitempty" yaml:"total,omitempty"`
	Usage    string `json:"usage,omitempty" yaml:"usage,omitempty"`
	Time     string `json:"time,omitempty" yaml:"time,omitempty"`
}

// Lines returns the populated display lines in order.
func (d Description) Lines() []string {
	lines := make([]string, 0, 3)
	if d.Total != "" {
		lines = append(lines, "Total: "+d.Total)
	}
	if d.Usage != "" {
		lines = append(lines, "Usage: "+d.Usage)
	}
	if d.Time != "" {
		lines = append(lines, "Time: "+d.Time)
	}
	return lines
}

// Describe renders spec with the model's unit. Energy figures are omitted
// for zero EU/t and the time figure for zero duration.
func (m *Model) Describe(spec Spec, useSeconds bool) Description {
	d := Description{
		Spec:     spec,
		TierName: m.table.Name(spec.Tier),
	}
	if spec.EUPerTick > 0 {
		d.Total = m.unit.Total(spec)
		d.Usage = m.unit.Rate(spec)
	}
	if spec.DurationTicks > 0 {
		d.Time = FormatDuration(spec, useSeconds)
	}
	return d
}
