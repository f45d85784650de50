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

// Overclocker trades energy for speed: every step multiplies EU/t by
// EUMultiplier and divides the duration by DurationDivisor.
type Overclocker struct {
	EUMultiplier    int64 `json:"euMultiplier" yaml:"euMultiplier"`
	DurationDivisor int64 `json:"durationDivisor" yaml:"durationDivisor"`
}

var (
	// Standard is the single-block overclock: 4x EU/t for half the time.
	Standard = Overclocker{EUMultiplier: 4, DurationDivisor: 2}
	// Perfect is the lossless overclock: 4x EU/t for a quarter of the time.
	Perfect = Overclocker{EUMultiplier: 4, DurationDivisor: 4}
)

// Validate checks the overclock factors.
func (o Overclocker) Validate() error {
	if o.EUMultiplier < 2 || o.DurationDivisor < 1 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"overclock requires an EU multiplier of at least 2 and a duration divisor of at least 1",
			map[string]any{"euMultiplier": o.EUMultiplier, "durationDivisor": o.DurationDivisor})
	}
	return nil
}

// ParseOverclocker resolves an overclock mode name ("none", "standard", "perfect").
// The boolean result is false for "none".
func ParseOverclocker(name string) (Overclocker, bool, error) {
	switch name {
	case "", "none":
		return Overclocker{}, false, nil
	case "standard":
		return Standard, true, nil
	case "perfect":
		return Perfect, true, nil
	default:
		return Overclocker{}, false, gterrors.New(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown overclock mode %q (supported: none, standard, perfect)", name))
	}
}

// Overclock adjusts spec for a machine of machineTier using the model's
// overclocker. Without one configured, spec is returned unchanged.
//
// Steps are applied while the recipe tier is below machineTier and the
// duration is longer than one tick. Recipes with zero EU/t are not
// overclocked, and a step that would overflow EU/t is not taken.
func (m *Model) Overclock(spec Spec, machineTier tier.Tier) (Spec, error) {
	if !m.table.Contains(machineTier) {
		_, err := m.table.ThresholdFor(machineTier)
		return spec, err
	}
	if m.overclock == nil {
		return spec, nil
	}
	return m.overclock.apply(m.table, spec, machineTier)
}

func (o Overclocker) apply(table *tier.Table, spec Spec, machineTier tier.Tier) (Spec, error) {
	if err := o.Validate(); err != nil {
		return spec, err
	}
	if spec.EUPerTick <= 0 {
		return spec, nil
	}

	out := spec
	for out.Tier < machineTier && out.DurationTicks > 1 {
		if out.EUPerTick > math.MaxInt64/o.EUMultiplier {
			break
		}
		next := out.EUPerTick * o.EUMultiplier
		if table.TierFor(next) > machineTier {
			break
		}
		out.EUPerTick = next
		out.DurationTicks = max(1, out.DurationTicks/o.DurationDivisor)
		out.Tier = table.TierFor(next)
	}
	return out, nil
}
