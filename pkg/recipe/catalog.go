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
	"iter"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/tier"
)

// Handle identifies a registration. It is for inspection only; nothing can
// be removed through it.
type Handle struct {
	Index int       `json:"index" yaml:"index"`
	ID    uuid.UUID `json:"id" yaml:"id"`
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d (%s)", h.Index, h.ID)
}

type entry struct {
	handle Handle
	def    *Definition
}

// Catalog is an append-only list of recipe definitions.
//
// Registration must finish before queries start. Once registration is done
// any number of goroutines may query the catalog without locking. Callers
// that register after queries begin must synchronize externally.
type Catalog struct {
	model   *power.Model
	entries []entry
	byDef   map[*Definition]int
}

// NewCatalog creates an empty catalog whose builders are costed with model.
// A nil model selects the default tier table.
func NewCatalog(model *power.Model) *Catalog {
	if model == nil {
		model = power.NewModel(nil)
	}
	return &Catalog{model: model, byDef: make(map[*Definition]int)}
}

// Model returns the power model used by RegisterBuilder.
func (c *Catalog) Model() *power.Model {
	return c.model
}

// Register appends d and returns its handle.
func (c *Catalog) Register(d *Definition) (Handle, error) {
	if d == nil {
		err := gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe definition is nil")
		recordRejection(err)
		return Handle{}, err
	}

	if !d.ignoreCollision {
		for _, e := range c.entries {
			if e.def.sameInputs(d) {
				recipeCollisions.Inc()
				slog.Warn("recipe inputs collide with an earlier registration",
					"category", d.category, "existing", e.handle.String())
				break
			}
		}
	}

	h := Handle{Index: len(c.entries), ID: uuid.New()}
	c.entries = append(c.entries, entry{handle: h, def: d})
	if _, ok := c.byDef[d]; !ok {
		c.byDef[d] = h.Index
	}
	recipeRegistrations.Inc()
	return h, nil
}

// RegisterBuilder builds b with the catalog's model and registers the
// result. A failed build leaves the catalog unchanged.
func (c *Catalog) RegisterBuilder(b *Builder) (Handle, error) {
	if b == nil {
		err := gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe builder is nil")
		recordRejection(err)
		return Handle{}, err
	}
	d, err := b.Build(c.model)
	if err != nil {
		recordRejection(err)
		return Handle{}, err
	}
	return c.Register(d)
}

// Len returns the number of registrations.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the definition registered under h.
func (c *Catalog) Get(h Handle) (*Definition, error) {
	if h.Index < 0 || h.Index >= len(c.entries) || c.entries[h.Index].handle.ID != h.ID {
		return nil, gterrors.NewWithContext(gterrors.ErrCodeNotFound,
			fmt.Sprintf("no recipe registered as %s", h), map[string]any{"index": h.Index})
	}
	return c.entries[h.Index].def, nil
}

// HandleOf returns the handle of the first registration of d.
func (c *Catalog) HandleOf(d *Definition) (Handle, bool) {
	i, ok := c.byDef[d]
	if !ok {
		return Handle{}, false
	}
	return c.entries[i].handle, true
}

// All yields every registration in order.
func (c *Catalog) All() iter.Seq2[Handle, *Definition] {
	return func(yield func(Handle, *Definition) bool) {
		recipeQueries.WithLabelValues("all").Inc()
		for _, e := range c.entries {
			if !yield(e.handle, e.def) {
				return
			}
		}
	}
}

// FindByTierCeiling yields, in registration order, every recipe a machine of
// observer tier can run. The sequence is lazy and can be ranged over again.
func (c *Catalog) FindByTierCeiling(observer tier.Tier) iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		recipeQueries.WithLabelValues("tier").Inc()
		for _, e := range c.entries {
			if !power.CanHandle(e.def.power, observer) {
				continue
			}
			if !yield(e.def) {
				return
			}
		}
	}
}

// FindByCategory yields, in registration order, the recipes of one recipe map.
func (c *Catalog) FindByCategory(category string) iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		recipeQueries.WithLabelValues("category").Inc()
		for _, e := range c.entries {
			if e.def.category != category {
				continue
			}
			if !yield(e.def) {
				return
			}
		}
	}
}

// FindByOutputChance returns the chance of every item output of d, in the
// order the outputs were registered.
func (c *Catalog) FindByOutputChance(d *Definition) []OutputChance {
	recipeQueries.WithLabelValues("chance").Inc()
	if d == nil {
		return nil
	}
	return d.OutputChances()
}

// Categories returns the distinct categories in sorted order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range c.entries {
		if _, ok := seen[e.def.category]; ok {
			continue
		}
		seen[e.def.category] = struct{}{}
		out = append(out, e.def.category)
	}
	slices.Sort(out)
	return out
}

func recordRejection(err error) {
	code := gterrors.CodeOf(err)
	if code == "" {
		code = gterrors.ErrCodeInternal
	}
	recipeRejections.WithLabelValues(string(code)).Inc()
}
