/*
Copyright © 2026 The gtpower Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gtnh/gtpower/pkg/power"
)

func tiersCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tiers",
		EnableShellCompletion: true,
		Usage:                 "List the voltage tier table",
		Description: `List every tier with its name, EU/t threshold and standard recipe voltage.

Use --thresholds to inspect a custom table before using it with other commands.`,
		Flags: []cli.Flag{
			thresholdsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t, err := loadTable(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, power.TiersResponse{
				MaxTier: t.MaxTier(),
				Tiers:   t.Tiers(),
			})
		},
	}
}
