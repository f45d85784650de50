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
	"fmt"
	"maps"
	"slices"
	"strings"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/power"
)

// Builder accumulates the parts of a Definition. Setters append or replace and
// never fail; every problem is reported by Build.
type Builder struct {
	category        string
	itemInputs      []ItemStack
	fluidInputs     []FluidStack
	itemOutputs     []ItemStack
	chances         []int
	fluidOutputs    []FluidStack
	eut             int64
	duration        int64
	specialValue    int64
	ignoreCollision bool
	noOptimize      bool
	metadata        map[string]any
	metadataKeys    []string
	duplicateKeys   []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{metadata: make(map[string]any)}
}

// Category sets the recipe map name.
func (b *Builder) Category(name string) *Builder {
	b.category = name
	return b
}

func (b *Builder) ItemInputs(stacks ...ItemStack) *Builder {
	b.itemInputs = append(b.itemInputs, stacks...)
	return b
}

func (b *Builder) FluidInputs(stacks ...FluidStack) *Builder {
	b.fluidInputs = append(b.fluidInputs, stacks...)
	return b
}

func (b *Builder) ItemOutputs(stacks ...ItemStack) *Builder {
	b.itemOutputs = append(b.itemOutputs, stacks...)
	return b
}

// OutputChances sets per-mille chances for the item outputs, by position.
// Outputs without a chance are guaranteed.
func (b *Builder) OutputChances(chances ...int) *Builder {
	b.chances = slices.Clone(chances)
	return b
}

func (b *Builder) FluidOutputs(stacks ...FluidStack) *Builder {
	b.fluidOutputs = append(b.fluidOutputs, stacks...)
	return b
}

// EUt sets the energy cost per tick.
func (b *Builder) EUt(eut int64) *Builder {
	b.eut = eut
	return b
}

// Duration sets the recipe length in ticks.
func (b *Builder) Duration(ticks int64) *Builder {
	b.duration = ticks
	return b
}

// SpecialValue sets the recipe map specific parameter.
func (b *Builder) SpecialValue(v int64) *Builder {
	b.specialValue = v
	return b
}

// IgnoreCollision allows the recipe to share inputs with another recipe in
// the same category without a warning.
func (b *Builder) IgnoreCollision() *Builder {
	b.ignoreCollision = true
	return b
}

// NoOptimize keeps stack sizes exactly as given.
func (b *Builder) NoOptimize() *Builder {
	b.noOptimize = true
	return b
}

// Metadata attaches value under key. A key may only be attached once; a
// second attachment fails the build instead of replacing the first value.
func (b *Builder) Metadata(key string, value any) *Builder {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	if _, exists := b.metadata[key]; exists {
		b.duplicateKeys = append(b.duplicateKeys, key)
		return b
	}
	b.metadata[key] = value
	b.metadataKeys = append(b.metadataKeys, key)
	return b
}

// Build validates the accumulated parts and computes the recipe cost with
// model. The Builder may be reused; the returned Definition shares no state
// with it.
func (b *Builder) Build(model *power.Model) (*Definition, error) {
	if model == nil {
		return nil, gterrors.New(gterrors.ErrCodeInvalidRequest, "power model is required")
	}
	if len(b.duplicateKeys) > 0 {
		return nil, gterrors.NewWithContext(gterrors.ErrCodeDuplicateMetadataKey,
			fmt.Sprintf("metadata key %q attached more than once", b.duplicateKeys[0]),
			map[string]any{"keys": slices.Clone(b.duplicateKeys)})
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	spec, err := model.Compute(b.eut, b.duration)
	if err != nil {
		return nil, err
	}

	outputs := make([]ItemOutput, len(b.itemOutputs))
	for i, s := range b.itemOutputs {
		chance := FullChance
		if i < len(b.chances) {
			chance = b.chances[i]
		}
		outputs[i] = ItemOutput{Item: s.Item, Quantity: s.Quantity, ChancePerMille: chance}
	}

	return &Definition{
		category:        b.category,
		itemInputs:      slices.Clone(b.itemInputs),
		fluidInputs:     slices.Clone(b.fluidInputs),
		itemOutputs:     outputs,
		fluidOutputs:    slices.Clone(b.fluidOutputs),
		power:           spec,
		specialValue:    b.specialValue,
		ignoreCollision: b.ignoreCollision,
		noOptimize:      b.noOptimize,
		metadata:        maps.Clone(b.metadata),
		metadataKeys:    slices.Clone(b.metadataKeys),
	}, nil
}

func (b *Builder) validate() error {
	if strings.TrimSpace(b.category) == "" {
		return invalid("recipe category is required", nil)
	}
	if len(b.itemInputs)+len(b.fluidInputs)+len(b.itemOutputs)+len(b.fluidOutputs) == 0 {
		return invalid("recipe has no inputs or outputs", map[string]any{"category": b.category})
	}
	for i, s := range b.itemInputs {
		if err := checkStack("itemInputs", i, s.Item, s.Quantity); err != nil {
			return err
		}
	}
	for i, s := range b.itemOutputs {
		if err := checkStack("itemOutputs", i, s.Item, s.Quantity); err != nil {
			return err
		}
	}
	for i, s := range b.fluidInputs {
		if err := checkStack("fluidInputs", i, s.Fluid, s.Amount); err != nil {
			return err
		}
	}
	for i, s := range b.fluidOutputs {
		if err := checkStack("fluidOutputs", i, s.Fluid, s.Amount); err != nil {
			return err
		}
	}
	if len(b.chances) > len(b.itemOutputs) {
		return invalid(fmt.Sprintf("%d output chances for %d item outputs", len(b.chances), len(b.itemOutputs)),
			map[string]any{"chances": len(b.chances), "outputs": len(b.itemOutputs)})
	}
	for i, c := range b.chances {
		if c < 0 || c > FullChance {
			return invalid(fmt.Sprintf("output chance %d must be within 0..%d", c, FullChance),
				map[string]any{"outputIndex": i, "chance": c})
		}
	}
	return nil
}

func checkStack(field string, index int, name string, quantity int64) error {
	if strings.TrimSpace(name) == "" {
		return invalid(fmt.Sprintf("%s[%d] has no name", field, index), nil)
	}
	if quantity <= 0 {
		return invalid(fmt.Sprintf("%s[%d] %s has non-positive quantity %d", field, index, name, quantity),
			map[string]any{"field": field, "index": index, "quantity": quantity})
	}
	return nil
}

func invalid(msg string, ctx map[string]any) error {
	if ctx == nil {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, msg)
	}
	return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest, msg, ctx)
}
