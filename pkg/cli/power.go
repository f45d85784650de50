/*
Copyright © 2026 The gtpower Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/power"
	"github.com/gtnh/gtpower/pkg/tier"
)

func powerCmd() *cli.Command {
	return &cli.Command{
		Name:                  "power",
		EnableShellCompletion: true,
		Usage:                 "Classify and describe a recipe cost",
		Description: `Compute the tier of a recipe cost and render its total energy, usage and time.

With --machine-tier the report also states whether a machine of that tier can
run the recipe and, when --overclock is set, the overclocked cost.

Examples:
  gtpower power --eut 480 --duration 100 --seconds
  gtpower power --eut 480 --duration 100 --machine-tier IV --overclock perfect`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "eut",
				Usage:    "energy per tick (EU/t)",
				Required: true,
			},
			&cli.Int64Flag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "duration in ticks",
			},
			&cli.StringFlag{
				Name:    "machine-tier",
				Aliases: []string{"m"},
				Usage:   "tier of the observing machine, by name or index (e.g., HV or 3)",
			},
			&cli.StringFlag{
				Name:  "overclock",
				Value: "none",
				Usage: "overclock applied on the machine tier (supported values: none, standard, perfect)",
			},
			&cli.StringFlag{
				Name:  "unit",
				Value: "eu",
				Usage: "energy unit for display (supported values: eu, steam)",
			},
			secondsFlag(),
			thresholdsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t, err := loadTable(cmd)
			if err != nil {
				return err
			}

			m, err := modelFromCmd(cmd, t)
			if err != nil {
				return err
			}

			q := power.Query{
				EUPerTick:     cmd.Int64("eut"),
				DurationTicks: cmd.Int64("duration"),
				UseSeconds:    cmd.Bool("seconds"),
			}
			if s := cmd.String("machine-tier"); s != "" {
				mt, err := t.Parse(s)
				if err != nil {
					return fmt.Errorf("invalid machine tier: %w", err)
				}
				q.MachineTier = ptr.To(mt)
			}

			rep, err := m.Report(q)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, rep)
		},
	}
}

// modelFromCmd builds a power model over t from the --unit and --overclock flags.
func modelFromCmd(cmd *cli.Command, t *tier.Table) (*power.Model, error) {
	unit, ok := power.ParseUnit(cmd.String("unit"))
	if !ok {
		return nil, fmt.Errorf("unknown unit: %q, supported values: eu, steam", cmd.String("unit"))
	}
	opts := []power.Option{power.WithUnit(unit)}

	oc, enabled, err := power.ParseOverclocker(cmd.String("overclock"))
	if err != nil {
		return nil, err
	}
	if enabled {
		opts = append(opts, power.WithOverclock(oc))
	}

	return power.NewModel(t, opts...), nil
}
