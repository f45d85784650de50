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
	"maps"
	"slices"

	"github.com/gtnh/gtpower/pkg/power"
)

// FullChance is the chance, in parts per thousand, of a guaranteed output.
const FullChance = 1000

// Well-known metadata keys.
const (
	// KeyBaseChance is the purification plant base success chance, in percent (float64).
	KeyBaseChance = "baseChance"
	// KeyCoilHeat is the minimum blast furnace coil heat, in kelvin (int64).
	KeyCoilHeat = "coilHeat"
)

// ItemStack is an item and a count.
type ItemStack struct {
	Item     string `json:"item" yaml:"item"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
}

// FluidStack is a fluid and an amount in litres.
type FluidStack struct {
	Fluid  string `json:"fluid" yaml:"fluid"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// ItemOutput is an item output with its chance in parts per thousand.
type ItemOutput struct {
	Item           string `json:"item" yaml:"item"`
	Quantity       int64  `json:"quantity" yaml:"quantity"`
	ChancePerMille int    `json:"chancePerMille" yaml:"chancePerMille"`
}

// OutputChance pairs an item output position with its chance.
type OutputChance struct {
	OutputIndex    int `json:"outputIndex" yaml:"outputIndex"`
	ChancePerMille int `json:"chancePerMille" yaml:"chancePerMille"`
}

// Item returns an ItemStack.
func Item(name string, quantity int64) ItemStack {
	return ItemStack{Item: name, Quantity: quantity}
}

// Fluid returns a FluidStack.
func Fluid(name string, amount int64) FluidStack {
	return FluidStack{Fluid: name, Amount: amount}
}

// Definition is a registered recipe. It is immutable once built; accessors
// return copies.
type Definition struct {
	category        string
	itemInputs      []ItemStack
	fluidInputs     []FluidStack
	itemOutputs     []ItemOutput
	fluidOutputs    []FluidStack
	power           power.Spec
	specialValue    int64
	ignoreCollision bool
	noOptimize      bool
	metadata        map[string]any
	metadataKeys    []string
}

// Category is the recipe map the definition belongs to.
func (d *Definition) Category() string { return d.category }

func (d *Definition) ItemInputs() []ItemStack { return slices.Clone(d.itemInputs) }

func (d *Definition) FluidInputs() []FluidStack { return slices.Clone(d.fluidInputs) }

func (d *Definition) ItemOutputs() []ItemOutput { return slices.Clone(d.itemOutputs) }

func (d *Definition) FluidOutputs() []FluidStack { return slices.Clone(d.fluidOutputs) }

// Power is the computed cost of the recipe.
func (d *Definition) Power() power.Spec { return d.power }

// SpecialValue is the recipe map specific parameter, such as coil heat.
func (d *Definition) SpecialValue() int64 { return d.specialValue }

// IgnoreCollision reports whether the recipe may share inputs with another
// recipe in its category.
func (d *Definition) IgnoreCollision() bool { return d.ignoreCollision }

// NoOptimize reports whether stack sizes must be kept as registered.
func (d *Definition) NoOptimize() bool { return d.noOptimize }

// MetadataKeys returns metadata keys in the order they were attached.
func (d *Definition) MetadataKeys() []string { return slices.Clone(d.metadataKeys) }

// Metadata returns a copy of the metadata map.
func (d *Definition) Metadata() map[string]any { return maps.Clone(d.metadata) }

// MetadataValue returns the metadata value stored under key if it has type T.
func MetadataValue[T any](d *Definition, key string) (T, bool) {
	var zero T
	if d == nil {
		return zero, false
	}
	raw, ok := d.metadata[key]
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// OutputChances returns the chance of every item output in registration order.
func (d *Definition) OutputChances() []OutputChance {
	out := make([]OutputChance, len(d.itemOutputs))
	for i, o := range d.itemOutputs {
		out[i] = OutputChance{OutputIndex: i, ChancePerMille: o.ChancePerMille}
	}
	return out
}

// sameInputs reports whether d and o consume the same inputs in the same
// category, which makes them indistinguishable to a machine.
func (d *Definition) sameInputs(o *Definition) bool {
	return d.category == o.category &&
		slices.Equal(d.itemInputs, o.itemInputs) &&
		slices.Equal(d.fluidInputs, o.fluidInputs)
}
