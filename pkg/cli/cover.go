/*
Copyright © 2026 The gtpower Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/gtnh/gtpower/pkg/cover"
)

// ModeView is the display form of a cover mode.
type ModeView struct {
	Value int    `json:"value" yaml:"value"`
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Safe  bool   `json:"safe" yaml:"safe"`
	// Data is the hex encoded binary form stored with the cover.
	Data string `json:"data" yaml:"data"`
}

func newModeView(m cover.Mode) (ModeView, error) {
	data, err := m.MarshalBinary()
	if err != nil {
		return ModeView{}, err
	}
	return ModeView{
		Value: int(m),
		Name:  m.Name(),
		Label: m.String(),
		Safe:  m.Safe(),
		Data:  hex.EncodeToString(data),
	}, nil
}

// TickView is the display form of a tick decision.
type TickView struct {
	Mode     ModeView `json:"mode" yaml:"mode"`
	Action   string   `json:"action" yaml:"action"`
	WorkData *uint8   `json:"workData,omitempty" yaml:"workData,omitempty"`
	Notify   bool     `json:"notify" yaml:"notify"`
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "mode",
		Required: true,
		Usage:    "current cover mode, by name or value (e.g., safe-enable-on-signal or 3)",
	}
}

func coverCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cover",
		EnableShellCompletion: true,
		Usage:                 "Evaluate machine controller cover modes",
		Description: `The machine controller cover enables or disables a machine from redstone.
Safe modes latch to always-off after a critical machine shutdown.`,
		Commands: []*cli.Command{
			coverModesCmd(),
			coverCycleCmd(),
			coverTickCmd(),
			coverPressCmd(),
			coverDecodeCmd(),
		},
	}
}

func coverModesCmd() *cli.Command {
	return &cli.Command{
		Name:  "modes",
		Usage: "List cover modes in screwdriver order",
		Flags: []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			modes := cover.Modes()
			views := make([]ModeView, 0, len(modes))
			for _, m := range modes {
				v, err := newModeView(m)
				if err != nil {
					return err
				}
				views = append(views, v)
			}
			return writeResult(ctx, cmd, views)
		},
	}
}

func coverCycleCmd() *cli.Command {
	return &cli.Command{
		Name:  "cycle",
		Usage: "Show the mode after a screwdriver click",
		Flags: []cli.Flag{
			modeFlag(),
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "cycle backwards (sneaking click)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := cover.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}
			v, err := newModeView(cover.Cycle(m, cmd.Bool("reverse")))
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, v)
		},
	}
}

func coverTickCmd() *cli.Command {
	return &cli.Command{
		Name:  "tick",
		Usage: "Evaluate one tick of the cover",
		Flags: []cli.Flag{
			modeFlag(),
			&cli.IntFlag{
				Name:  "redstone",
				Usage: "incoming redstone signal strength (0-15)",
			},
			&cli.BoolFlag{
				Name:  "working",
				Usage: "machine is currently allowed to work",
			},
			&cli.BoolFlag{
				Name:  "shutdown",
				Usage: "machine has shut down on its own",
			},
			&cli.BoolFlag{
				Name:  "critical",
				Usage: "the shutdown was critical",
			},
			&cli.BoolFlag{
				Name:  "notified",
				Usage: "owner was already notified of a latch",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := cover.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}
			redstone := cmd.Int("redstone")
			if redstone < 0 || redstone > 15 {
				return fmt.Errorf("redstone: %d, must be between 0 and 15", redstone)
			}

			d := cover.Tick(m, cover.Input{
				Redstone: uint8(redstone),
				Working:  cmd.Bool("working"),
				Shutdown: cmd.Bool("shutdown"),
				Critical: cmd.Bool("critical"),
				Notified: cmd.Bool("notified"),
			})

			mv, err := newModeView(d.Next)
			if err != nil {
				return err
			}
			out := TickView{Mode: mv, Action: d.Action.String(), Notify: d.Notify}
			if d.SetWorkData {
				out.WorkData = ptr.To(d.WorkData)
			}
			return writeResult(ctx, cmd, out)
		},
	}
}

func coverPressCmd() *cli.Command {
	return &cli.Command{
		Name:  "press",
		Usage: "Show the mode after toggling a settings button",
		Flags: []cli.Flag{
			modeFlag(),
			&cli.StringFlag{
				Name:     "button",
				Aliases:  []string{"b"},
				Required: true,
				Usage:    "button to toggle (supported values: enable-on-signal, disable-on-signal, always-off, safe-mode)",
			},
			&cli.BoolFlag{
				Name:  "release",
				Usage: "release the button instead of pressing it",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := cover.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}
			b, err := cover.ParseButton(cmd.String("button"))
			if err != nil {
				return err
			}
			v, err := newModeView(cover.PressButton(m, b, !cmd.Bool("release")))
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, v)
		},
	}
}

func coverDecodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode stored cover data",
		ArgsUsage: "HEX",
		Flags:     []cli.Flag{outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected one hex argument, got %d", cmd.NArg())
			}
			data, err := hex.DecodeString(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("invalid hex data: %w", err)
			}
			var m cover.Mode
			if err := m.UnmarshalBinary(data); err != nil {
				return err
			}
			v, err := newModeView(m)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, v)
		},
	}
}
