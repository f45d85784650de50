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
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"path"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/defaults"
	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/header"
	"github.com/gtnh/gtpower/pkg/serializer"
)

//go:embed data/*.yaml
var recipeFS embed.FS

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// File is the on-disk form of a recipe list.
type File struct {
	header.Header `yaml:",inline"`

	Recipes []FileRecipe `yaml:"recipes"`
}

// FileRecipe is one recipe in a File. Exactly one of EUt and Voltage and at
// most one of Duration and Seconds may be set. Voltage names a tier and
// resolves to its recipe voltage.
type FileRecipe struct {
	Category        string       `yaml:"category"`
	ItemInputs      []ItemStack  `yaml:"itemInputs"`
	FluidInputs     []FluidStack `yaml:"fluidInputs"`
	ItemOutputs     []FileOutput `yaml:"itemOutputs"`
	FluidOutputs    []FluidStack `yaml:"fluidOutputs"`
	EUt             *int64       `yaml:"eut"`
	Voltage         string       `yaml:"voltage"`
	Duration        *int64       `yaml:"duration"`
	Seconds         *float64     `yaml:"seconds"`
	SpecialValue    int64        `yaml:"specialValue"`
	IgnoreCollision bool         `yaml:"ignoreCollision"`
	NoOptimize      bool         `yaml:"noOptimize"`
	// Metadata is kept as a node so repeated keys reach the builder instead
	// of failing in the decoder.
	Metadata yaml.Node `yaml:"metadata"`
}

// FileOutput is an item output. A missing chance means guaranteed.
type FileOutput struct {
	Item     string `yaml:"item"`
	Quantity int64  `yaml:"quantity"`
	Chance   *int   `yaml:"chance"`
}

// LoadYAML reads a File from r and registers its recipes into c. Every
// recipe is built before the first is registered, so a bad recipe leaves c
// unchanged.
func LoadYAML(r io.Reader, c *Catalog) ([]Handle, error) {
	start := time.Now()
	defer func() { catalogLoadDuration.Observe(time.Since(start).Seconds()) }()

	defs, err := parse(r, "input", c)
	if err != nil {
		return nil, err
	}
	return commit(c, defs)
}

// LoadFile is LoadYAML over the file at path.
func LoadFile(path string, c *Catalog) ([]Handle, error) {
	start := time.Now()
	defer func() { catalogLoadDuration.Observe(time.Since(start).Seconds()) }()

	reader, err := serializer.NewFileReader(serializer.FormatYAML, path, serializer.WithStrict())
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeNotFound, fmt.Sprintf("failed to open recipe file %s", path), err)
	}
	defer reader.Close()

	defs, err := parseReader(reader, path, c)
	if err != nil {
		return nil, err
	}
	return commit(c, defs)
}

// LoadFS registers the recipes of every file in fsys matching pattern, in
// lexical file order. All files are built before anything is registered.
func LoadFS(ctx context.Context, fsys fs.FS, pattern string, c *Catalog) ([]Handle, error) {
	start := time.Now()
	defer func() { catalogLoadDuration.Observe(time.Since(start).Seconds()) }()

	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "invalid recipe file pattern", err)
	}
	slices.Sort(names)

	var defs []*Definition
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, gterrors.Wrap(gterrors.ErrCodeTimeout, "recipe load canceled", err)
		}
		f, err := fsys.Open(name)
		if err != nil {
			return nil, gterrors.Wrap(gterrors.ErrCodeInternal, fmt.Sprintf("failed to open %s", name), err)
		}
		fileDefs, err := parse(f, name, c)
		f.Close()
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return commit(c, defs)
}

// LoadBuiltin registers the embedded recipes into c. It is used instead of
// DefaultCatalog when c is built on a custom tier table.
func LoadBuiltin(ctx context.Context, c *Catalog) ([]Handle, error) {
	return LoadFS(ctx, recipeFS, path.Join("data", "*.yaml"), c)
}

// DefaultCatalog returns the catalog of built-in recipes on the default tier
// table. It is loaded on first use and shared afterwards; callers must not
// register into it.
func DefaultCatalog(ctx context.Context) (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
		defer cancel()

		c := NewCatalog(nil)
		handles, err := LoadBuiltin(ctx, c)
		if err != nil {
			defaultCatalogErr = err
			return
		}
		slog.Debug("loaded built-in recipes", "count", len(handles), "categories", len(c.Categories()))
		defaultCatalog = c
	})
	return defaultCatalog, defaultCatalogErr
}

func parse(r io.Reader, source string, c *Catalog) ([]*Definition, error) {
	reader, err := serializer.NewReader(serializer.FormatYAML, r, serializer.WithStrict())
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInternal, "failed to create recipe reader", err)
	}
	return parseReader(reader, source, c)
}

func parseReader(reader *serializer.Reader, source string, c *Catalog) ([]*Definition, error) {
	var file File
	if err := reader.Deserialize(&file); err != nil {
		return nil, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse recipes from %s", source), err,
			map[string]any{"source": source})
	}
	if err := file.Check(header.KindRecipeList); err != nil {
		return nil, gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid recipe file %s", source), err,
			map[string]any{"source": source})
	}

	defs := make([]*Definition, 0, len(file.Recipes))
	for i := range file.Recipes {
		d, err := file.Recipes[i].build(c)
		if err == nil {
			defs = append(defs, d)
			continue
		}
		recordRejection(err)
		return nil, gterrors.WrapWithContext(codeOrInvalid(err),
			fmt.Sprintf("recipe %d in %s", i, source), err,
			map[string]any{"source": source, "index": i, "category": file.Recipes[i].Category})
	}
	return defs, nil
}

func commit(c *Catalog, defs []*Definition) ([]Handle, error) {
	handles := make([]Handle, 0, len(defs))
	for _, d := range defs {
		h, err := c.Register(d)
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func (fr *FileRecipe) build(c *Catalog) (*Definition, error) {
	b, err := fr.builder(c)
	if err != nil {
		return nil, err
	}
	return b.Build(c.model)
}

func (fr *FileRecipe) builder(c *Catalog) (*Builder, error) {
	b := NewBuilder().
		Category(fr.Category).
		ItemInputs(fr.ItemInputs...).
		FluidInputs(fr.FluidInputs...).
		FluidOutputs(fr.FluidOutputs...).
		SpecialValue(fr.SpecialValue)
	if fr.IgnoreCollision {
		b.IgnoreCollision()
	}
	if fr.NoOptimize {
		b.NoOptimize()
	}

	chances := make([]int, len(fr.ItemOutputs))
	explicit := false
	for i, o := range fr.ItemOutputs {
		b.ItemOutputs(Item(o.Item, o.Quantity))
		chances[i] = ptr.Deref(o.Chance, FullChance)
		explicit = explicit || o.Chance != nil
	}
	if explicit {
		b.OutputChances(chances...)
	}

	eut, err := fr.eut(c)
	if err != nil {
		return nil, err
	}
	b.EUt(eut)

	ticks, err := fr.ticks()
	if err != nil {
		return nil, err
	}
	b.Duration(ticks)

	if err := fr.metadata(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (fr *FileRecipe) eut(c *Catalog) (int64, error) {
	switch {
	case fr.EUt != nil && fr.Voltage != "":
		return 0, gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe sets both eut and voltage")
	case fr.EUt != nil:
		return *fr.EUt, nil
	case fr.Voltage != "":
		table := c.model.Table()
		t, err := table.Parse(fr.Voltage)
		if err != nil {
			return 0, err
		}
		return table.RecipeVoltage(t)
	default:
		return 0, nil
	}
}

func (fr *FileRecipe) ticks() (int64, error) {
	switch {
	case fr.Duration != nil && fr.Seconds != nil:
		return 0, gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe sets both duration and seconds")
	case fr.Duration != nil:
		return *fr.Duration, nil
	case fr.Seconds != nil:
		t := math.Round(*fr.Seconds * defaults.TicksPerSecond)
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
		if math.IsNaN(t) || t >= float64(math.MaxInt64) || t < math.MinInt64 {
			return 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("recipe seconds %v is not a representable duration", *fr.Seconds),
				map[string]any{"seconds": fmt.Sprint(*fr.Seconds)})
		}
		return int64(t), nil
	default:
		return 0, nil
	}
}

func (fr *FileRecipe) metadata(b *Builder) error {
	node := &fr.Metadata
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe metadata must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return gterrors.Wrap(gterrors.ErrCodeInvalidRequest, fmt.Sprintf("invalid metadata value for %q", key), err)
		}
		if n, ok := value.(int); ok {
			value = int64(n)
		}
		b.Metadata(key, value)
	}
	return nil
}

func codeOrInvalid(err error) gterrors.ErrorCode {
	if code := gterrors.CodeOf(err); code != "" {
		return code
	}
	return gterrors.ErrCodeInvalidRequest
}
