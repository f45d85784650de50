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

package power

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gtnh/gtpower/pkg/defaults"
)

// SecondsPerTick is the length of one game tick.
const SecondsPerTick = 1.0 / defaults.TicksPerSecond

// FormatNumber renders v with English digit grouping and at most two
// fraction digits, e.g. 1234.5 -> "1,234.5".
func FormatNumber(v any) string {
	// message.Printer is not safe for concurrent use
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatDuration renders the duration of spec.
//
// In seconds mode the duration is shown as seconds and, when it is at most one
// second, the tick count follows in parentheses: "0.05 secs (1 tick)".
// Otherwise ticks are shown directly with singular wording for exactly one tick.
func FormatDuration(spec Spec, useSeconds bool) string {
	if !useSeconds {
		return formatTicks(spec.DurationTicks)
	}

	s := FormatNumber(float64(spec.DurationTicks)*SecondsPerTick) + " secs"
	if spec.DurationTicks <= defaults.TicksPerSecond {
		s += " (" + formatTicks(spec.DurationTicks) + ")"
	}
	return s
}

func formatTicks(ticks int64) string {
	if ticks == 1 {
		return FormatNumber(ticks) + " tick"
	}
	return FormatNumber(ticks) + " ticks"
}
