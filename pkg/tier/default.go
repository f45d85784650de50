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

package tier

import "sync"

// GregTech voltage tiers.
const (
	ULV Tier = iota
	LV
	MV
	HV
	EV
	IV
	LuV
	ZPM
	UV
	UHV
	UEV
	UIV
	UMV
	UXV
	MAX
)

var (
	voltages = []int64{
		8, 32, 128, 512, 2048, 8192, 32768, 131072, 524288,
		2097152, 8388608, 33554432, 134217728, 536870912,
		2147483640,
	}

	voltageNames = []string{
		"ULV", "LV", "MV", "HV", "EV", "IV", "LuV", "ZPM", "UV",
		"UHV", "UEV", "UIV", "UMV", "UXV", "MAX",
	}

	defaultTable = sync.OnceValue(func() *Table {
		t, err := NewTable(voltages, WithNames(voltageNames...))
		if err != nil {
			panic(err)
		}
		return t
	})
)

// Default returns the process-wide GregTech voltage table.
// It is built on first use and never mutated afterwards.
func Default() *Table {
	return defaultTable()
}
