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

// Action is what the cover asks of the machine on a tick.
type Action int

const (
	// ActionNone leaves the machine as it is.
	ActionNone Action = iota
	// ActionEnable allows the machine to work.
	ActionEnable
	// ActionDisable stops the machine.
	ActionDisable
)

func (a Action) String() string {
	switch a {
	case ActionEnable:
		return "enable"
	case ActionDisable:
		return "disable"
	default:
		return "none"
	}
}

// Input is the machine state seen by the cover on one tick.
type Input struct {
	// Redstone is the incoming signal strength, 0 to 15.
	Redstone uint8
	// Working reports whether the machine is currently allowed to work.
	Working bool
	// Shutdown reports whether the machine stopped on its own, and Critical
	// whether that shutdown was critical.
	Shutdown bool
	Critical bool
	// Notified reports whether the owner was already told about a latch.
	Notified bool
}

// Decision is the outcome of a tick.
type Decision struct {
	Next   Mode
	Action Action
	// WorkData is set when the cover forwards the redstone level to the
	// machine.
	WorkData    uint8
	SetWorkData bool
	// Notify asks the caller to tell the owner the machine was latched off.
	Notify bool
}

// Tick evaluates mode m against in.
//
// Signal modes enable the machine when the signal state matches the mode
// and disable it otherwise, forwarding the signal level as work data.
// AlwaysOff disables the machine every tick. A safe mode behaves like its
// plain counterpart until the machine reports a critical shutdown; then it
// disables the machine, asks for a single notification and becomes
// AlwaysOff. Invalid modes do nothing.
func Tick(m Mode, in Input) Decision {
	switch {
	case m == EnableOnSignal || m == DisableOnSignal:
		d := Decision{Next: m, WorkData: in.Redstone, SetWorkData: true}
		wantOn := (in.Redstone > 0) == (m == EnableOnSignal)
		switch {
		case wantOn && !in.Working:
			d.Action = ActionEnable
		case !wantOn && in.Working:
			d.Action = ActionDisable
		}
		return d
	case m == AlwaysOff:
		return Decision{Next: AlwaysOff, Action: ActionDisable}
	case m.Safe():
		if in.Shutdown && in.Critical {
			return Decision{Next: AlwaysOff, Action: ActionDisable, Notify: !in.Notified}
		}
		d := Tick(m.unsafe(), in)
		d.Next = m
		return d
	default:
		return Decision{Next: m}
	}
}

// Removal is the decision applied when the cover is taken off: the machine
// is allowed to work again and its work data is cleared.
func Removal() Decision {
	return Decision{Next: EnableOnSignal, Action: ActionEnable, SetWorkData: true}
}
