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
	"context"
	"fmt"
	"iter"
	"net/http"
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/defaults"
	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/serializer"
	"github.com/gtnh/gtpower/pkg/server"
	"github.com/gtnh/gtpower/pkg/tier"
)

// View is the display form of a registered recipe.
type View struct {
	Handle       Handle         `json:"handle" yaml:"handle"`
	Category     string         `json:"category" yaml:"category"`
	ItemInputs   []ItemStack    `json:"itemInputs,omitempty" yaml:"itemInputs,omitempty"`
	FluidInputs  []FluidStack   `json:"fluidInputs,omitempty" yaml:"fluidInputs,omitempty"`
	ItemOutputs  []ItemOutput   `json:"itemOutputs,omitempty" yaml:"itemOutputs,omitempty"`
	FluidOutputs []FluidStack   `json:"fluidOutputs,omitempty" yaml:"fluidOutputs,omitempty"`
	Power        power.Spec     `json:"power" yaml:"power"`
	TierName     string         `json:"tierName" yaml:"tierName"`
	Lines        []string       `json:"lines" yaml:"lines"`
	SpecialValue int64          `json:"specialValue,omitempty" yaml:"specialValue,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Filter selects recipes for Select. Zero values select everything.
type Filter struct {
	// Tier, when set, keeps recipes a machine of that tier can run.
	Tier *tier.Tier
	// Category, when set, keeps recipes of that recipe map.
	Category string
}

// Select yields the registered recipes matching f in registration order.
func (c *Catalog) Select(f Filter) iter.Seq[*Definition] {
	var seq iter.Seq[*Definition]
	switch {
	case f.Tier != nil:
		seq = c.FindByTierCeiling(*f.Tier)
	case f.Category != "":
		return c.FindByCategory(f.Category)
	default:
		seq = func(yield func(*Definition) bool) {
			for _, d := range c.All() {
				if !yield(d) {
					return
				}
			}
		}
	}
	if f.Category == "" {
		return seq
	}
	return func(yield func(*Definition) bool) {
		for d := range seq {
			if d.category == f.Category && !yield(d) {
				return
			}
		}
	}
}

// View renders d for display.
func (c *Catalog) View(d *Definition, useSeconds bool) View {
	h, _ := c.HandleOf(d)
	desc := c.model.Describe(d.power, useSeconds)
	return View{
		Handle:       h,
		Category:     d.category,
		ItemInputs:   d.ItemInputs(),
		FluidInputs:  d.FluidInputs(),
		ItemOutputs:  d.ItemOutputs(),
		FluidOutputs: d.FluidOutputs(),
		Power:        d.power,
		TierName:     desc.TierName,
		Lines:        desc.Lines(),
		SpecialValue: d.specialValue,
		Metadata:     d.Metadata(),
	}
}

// Views renders every recipe matching f, stopping early if ctx is done.
func (c *Catalog) Views(ctx context.Context, f Filter, useSeconds bool) ([]View, error) {
	views := make([]View, 0)
	for d := range c.Select(f) {
		if err := ctx.Err(); err != nil {
			return nil, gterrors.Wrap(gterrors.ErrCodeTimeout, "recipe query canceled", err)
		}
		views = append(views, c.View(d, useSeconds))
	}
	return views, nil
}

// RecipesResponse is the body of a recipe listing.
type RecipesResponse struct {
	Count   int    `json:"count" yaml:"count"`
	Total   int    `json:"total" yaml:"total"`
	Recipes []View `json:"recipes" yaml:"recipes"`
}

// HandleRecipes lists recipes filtered by the query parameters tier (name or
// index), category and seconds.
func (c *Catalog) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, gterrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	params := r.URL.Query()
	var f Filter
	if s := params.Get("tier"); s != "" {
		t, err := c.model.Table().Parse(s)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Invalid tier", nil)
			return
		}
		f.Tier = ptr.To(t)
	}
	f.Category = params.Get("category")

	var useSeconds bool
	if s := params.Get("seconds"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
				"Invalid seconds parameter", false, map[string]any{"seconds": s})
			return
		}
		useSeconds = v
	}

	views, err := c.Views(ctx, f, useSeconds)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list recipes", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, RecipesResponse{
		Count:   len(views),
		Total:   c.Len(),
		Recipes: views,
	})
}
