/*
Copyright © 2026 The gtpower Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/recipe"
)

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "Query the recipe catalog",
		Description: `List recipes from the built-in catalog, in registration order.

--tier keeps the recipes a machine of that tier can run. --category keeps one
recipe map. Additional recipe files may be loaded with --file; they are
registered after the built-in recipes and each file is all-or-nothing.

Examples:
  gtpower recipes --tier EV --seconds
  gtpower recipes --category mixer --format json
  gtpower recipes --file extra.yaml --tier LuV`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tier",
				Usage: "machine tier ceiling, by name or index (e.g., EV or 4)",
			},
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "recipe map name (e.g., blastFurnace)",
			},
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "additional YAML recipe file to load (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "builtin",
				Value: true,
				Usage: "load the built-in recipes (their voltages are GregTech tier names)",
			},
			&cli.BoolFlag{
				Name:  "categories",
				Usage: "list the recipe categories instead of recipes",
			},
			secondsFlag(),
			thresholdsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := catalogFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("categories") {
				return writeResult(ctx, cmd, c.Categories())
			}

			var f recipe.Filter
			if s := cmd.String("tier"); s != "" {
				t, err := c.Model().Table().Parse(s)
				if err != nil {
					return fmt.Errorf("invalid tier: %w", err)
				}
				f.Tier = ptr.To(t)
			}
			f.Category = cmd.String("category")

			views, err := c.Views(ctx, f, cmd.Bool("seconds"))
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, recipe.RecipesResponse{
				Count:   len(views),
				Total:   c.Len(),
				Recipes: views,
			})
		},
	}
}

// catalogFromCmd loads the built-in recipes, unless --builtin=false, and any
// --file recipes into a catalog on the --thresholds table.
func catalogFromCmd(ctx context.Context, cmd *cli.Command) (*recipe.Catalog, error) {
	t, err := loadTable(cmd)
	if err != nil {
		return nil, err
	}

	c := recipe.NewCatalog(power.NewModel(t))
	if cmd.Bool("builtin") {
		if _, err := recipe.LoadBuiltin(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to load built-in recipes: %w", err)
		}
	}

	for _, path := range cmd.StringSlice("file") {
		handles, err := recipe.LoadFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipes from %q: %w", path, err)
		}
		slog.Debug("loaded recipe file", "path", path, "count", len(handles))
	}
	return c, nil
}
