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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gtnh/gtpower/pkg/header"
	"github.com/gtnh/gtpower/pkg/serializer"
	"github.com/gtnh/gtpower/pkg/tier"
)

// Flags are constructed per command since urfave/cli keeps parsed values on
// the flag itself.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func thresholdsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "thresholds",
		Usage:   "YAML or JSON file with a custom tier table (default: GregTech tiers)",
		Sources: cli.EnvVars("GTPOWER_THRESHOLDS"),
	}
}

func secondsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "seconds",
		Aliases: []string{"s"},
		Usage:   "show durations in seconds instead of ticks",
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return "", err
	}
	return f, nil
}

// TableFile is the on-disk form of a custom tier table.
//
//	kind: TierTable
//	thresholds: [32, 128, 512, 2048]
//	names: [LV, MV, HV, EV]
type TableFile struct {
	header.Header `json:",inline" yaml:",inline"`

	Thresholds []int64  `json:"thresholds" yaml:"thresholds"`
	Names      []string `json:"names,omitempty" yaml:"names,omitempty"`
}

// loadTable returns the table named by --thresholds, or the default table.
func loadTable(cmd *cli.Command) (*tier.Table, error) {
	path := cmd.String("thresholds")
	if path == "" {
		return tier.Default(), nil
	}

	f, err := serializer.FromFile[TableFile](path, serializer.WithStrict())
	if err != nil {
		return nil, fmt.Errorf("failed to load tier table from %q: %w", path, err)
	}
	if err := f.Check(header.KindTierTable); err != nil {
		return nil, fmt.Errorf("invalid tier table in %q: %w", path, err)
	}
	t, err := tier.NewTable(f.Thresholds, tier.WithNames(f.Names...))
	if err != nil {
		return nil, fmt.Errorf("invalid tier table in %q: %w", path, err)
	}
	slog.Debug("loaded tier table", "path", path, "tiers", t.Len())
	return t, nil
}

// writeResult serializes v according to --format and --output.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
