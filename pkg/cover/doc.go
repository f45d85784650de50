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

// Package cover implements the machine controller cover: a redstone driven
// on/off switch for a machine with an optional safe mode that latches the
// machine off after a critical shutdown.
//
// The cover state is a Mode. Tick is a pure transition from a mode and the
// machine's current inputs to the action to take and the next mode. Cycle
// models screwdriver clicks and PressButton the settings panel.
//
// Modes travel as a 4-byte big-endian integer (MarshalBinary) or as a name
// (MarshalText), which also gives them a JSON form.
package cover
