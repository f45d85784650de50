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

package cover

import (
	"fmt"
	"strconv"
	"strings"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
)

// Mode is the configured behaviour of the cover.
type Mode int

const (
	// EnableOnSignal runs the machine while redstone is applied.
	EnableOnSignal Mode = iota
	// DisableOnSignal stops the machine while redstone is applied.
	DisableOnSignal
	// AlwaysOff keeps the machine stopped.
	AlwaysOff
	// SafeEnableOnSignal is EnableOnSignal that latches to AlwaysOff after a
	// critical shutdown.
	SafeEnableOnSignal
	// SafeDisableOnSignal is DisableOnSignal that latches to AlwaysOff after
	// a critical shutdown.
	SafeDisableOnSignal

	modeCount = 5
	safeShift = 3
)

var modeNames = [modeCount]string{
	"enable-on-signal",
	"disable-on-signal",
	"always-off",
	"safe-enable-on-signal",
	"safe-disable-on-signal",
}

var modeLabels = [modeCount]string{
	"Enable with Signal",
	"Disable with Signal",
	"Disabled",
	"Enable with Signal (Safe)",
	"Disable with Signal (Safe)",
}

// Modes returns every mode in screwdriver order.
func Modes() []Mode {
	return []Mode{EnableOnSignal, DisableOnSignal, AlwaysOff, SafeEnableOnSignal, SafeDisableOnSignal}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= EnableOnSignal && m <= SafeDisableOnSignal
}

// Safe reports whether m latches off after a critical shutdown.
func (m Mode) Safe() bool {
	return m >= SafeEnableOnSignal && m <= SafeDisableOnSignal
}

// Name is the stable identifier of m, e.g. "safe-enable-on-signal".
func (m Mode) Name() string {
	if !m.Valid() {
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// String returns the player facing label of m.
func (m Mode) String() string {
	if !m.Valid() {
		return m.Name()
	}
	return modeLabels[m]
}

// unsafe maps a safe mode to the mode it behaves like until it trips.
func (m Mode) unsafe() Mode {
	if m.Safe() {
		return m - safeShift
	}
	return m
}

// ParseMode accepts a mode name, case-insensitively, or its integer value.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if v == name {
			return Mode(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil {
		m := Mode(n)
		if !m.Valid() {
			return 0, outOfRange(n)
		}
		return m, nil
	}
	return 0, gterrors.New(gterrors.ErrCodeInvalidRequest,
		fmt.Sprintf("unknown cover mode %q (supported: %s)", s, strings.Join(modeNames[:], ", ")))
}

func outOfRange(v int) error {
	return gterrors.NewWithContext(gterrors.ErrCodeOutOfRange,
		fmt.Sprintf("cover mode %d out of range [0, %d]", v, modeCount-1),
		map[string]any{"mode": v})
}

// Cycle returns the mode after a screwdriver click. Forward clicks wrap from
// the last mode to the first; a reverse click on the first mode lands on
// AlwaysOff.
func Cycle(m Mode, reverse bool) Mode {
	step := 1
	if reverse {
		step = -1
	}
	next := (int(m) + step) % modeCount
	if next < 0 {
		next = int(AlwaysOff)
	}
	return Mode(next)
}

// RedstoneSensitive reports whether the cover reads redstone in mode m.
func RedstoneSensitive(m Mode) bool {
	return m != AlwaysOff
}
