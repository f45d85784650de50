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

// Button is a toggle on the cover settings panel.
type Button int

const (
	ButtonEnableOnSignal Button = iota
	ButtonDisableOnSignal
	ButtonAlwaysOff
	ButtonSafeMode
)

func (b Button) String() string {
	switch b {
	case ButtonEnableOnSignal:
		return "Enable with Redstone"
	case ButtonDisableOnSignal:
		return "Disable with Redstone"
	case ButtonAlwaysOff:
		return "Disable machine"
	case ButtonSafeMode:
		return "Safe Mode"
	default:
		return "unknown"
	}
}

var buttonNames = map[string]Button{
	"enable-on-signal":  ButtonEnableOnSignal,
	"disable-on-signal": ButtonDisableOnSignal,
	"always-off":        ButtonAlwaysOff,
	"safe-mode":         ButtonSafeMode,
}

// ParseButton accepts a button name, as used for modes plus "safe-mode", or
// its integer index.
func ParseButton(s string) (Button, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if b, ok := buttonNames[v]; ok {
		return b, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= int(ButtonEnableOnSignal) && n <= int(ButtonSafeMode) {
		return Button(n), nil
	}
	return 0, gterrors.New(gterrors.ErrCodeInvalidRequest,
		fmt.Sprintf("unknown cover button %q (supported: enable-on-signal, disable-on-signal, always-off, safe-mode)", s))
}

// ButtonActive reports whether button b shows as pressed in mode m. The
// three behaviour buttons are exclusive; the safe mode button is
// independent of them.
func ButtonActive(m Mode, b Button) bool {
	switch b {
	case ButtonEnableOnSignal, ButtonDisableOnSignal, ButtonAlwaysOff:
		return m.Valid() && Mode(b) == m.unsafe()
	case ButtonSafeMode:
		return m.Safe()
	default:
		return false
	}
}

// PressButton returns the mode after b is set to enabled in mode m.
// Releasing a behaviour button changes nothing. AlwaysOff has no safe
// variant, so selecting it drops safe mode.
func PressButton(m Mode, b Button, enabled bool) Mode {
	switch b {
	case ButtonEnableOnSignal, ButtonDisableOnSignal, ButtonAlwaysOff:
		if !enabled {
			return m
		}
		return WithSafeMode(Mode(b), m.Safe())
	case ButtonSafeMode:
		return WithSafeMode(m, enabled)
	default:
		return m
	}
}

// WithSafeMode returns the safe or plain variant of m. AlwaysOff is
// returned unchanged.
func WithSafeMode(m Mode, safe bool) Mode {
	switch {
	case !m.Valid() || m == AlwaysOff:
		return m
	case safe && !m.Safe():
		return m + safeShift
	case !safe && m.Safe():
		return m - safeShift
	default:
		return m
	}
}
