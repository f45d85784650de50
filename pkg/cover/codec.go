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
	"encoding/binary"
	"fmt"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
)

// EncodedSize is the length of the binary form of a Mode.
const EncodedSize = 4

// legacySafeAlwaysOff is written by older covers that combined AlwaysOff
// with the safe flag. It behaves exactly like AlwaysOff.
const legacySafeAlwaysOff = int32(AlwaysOff) + safeShift

// MarshalBinary encodes m as a big-endian int32.
func (m Mode) MarshalBinary() ([]byte, error) {
	if !m.Valid() {
		return nil, outOfRange(int(m))
	}
	return binary.BigEndian.AppendUint32(make([]byte, 0, EncodedSize), uint32(int32(m))), nil
}

// UnmarshalBinary decodes a big-endian int32 mode.
func (m *Mode) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("cover data must be %d bytes, got %d", EncodedSize, len(data)),
			map[string]any{"length": len(data)})
	}
	v := int32(binary.BigEndian.Uint32(data))
	if v == legacySafeAlwaysOff {
		*m = AlwaysOff
		return nil
	}
	decoded := Mode(v)
	if !decoded.Valid() {
		return outOfRange(int(v))
	}
	*m = decoded
	return nil
}

// MarshalText encodes m by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, outOfRange(int(m))
	}
	return []byte(m.Name()), nil
}

// UnmarshalText accepts anything ParseMode does.
func (m *Mode) UnmarshalText(text []byte) error {
	decoded, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}
