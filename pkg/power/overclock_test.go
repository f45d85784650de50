package power

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/tier"
)

func TestOverclock(t *testing.T) {
	tests := []struct {
		name    string
		oc      Overclocker
		spec    Spec
		machine tier.Tier
		want    Spec
	}{
		{
			name:    "standard two steps",
			oc:      Standard,
			spec:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
			machine: tier.IV,
			want:    Spec{Tier: tier.IV, EUPerTick: 7680, DurationTicks: 25},
		},
		{
			name:    "perfect two steps",
			oc:      Perfect,
			spec:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
			machine: tier.IV,
			want:    Spec{Tier: tier.IV, EUPerTick: 7680, DurationTicks: 6},
		},
		{
			name:    "same tier unchanged",
			oc:      Standard,
			spec:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
			machine: tier.HV,
			want:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
		},
		{
			name:    "lower machine unchanged",
			oc:      Standard,
			spec:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
			machine: tier.LV,
			want:    Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100},
		},
		{
			name:    "single tick unchanged",
			oc:      Standard,
			spec:    Spec{Tier: tier.LV, EUPerTick: 30, DurationTicks: 1},
			machine: tier.LuV,
			want:    Spec{Tier: tier.LV, EUPerTick: 30, DurationTicks: 1},
		},
		{
			name:    "duration floors at one tick",
			oc:      Perfect,
			spec:    Spec{Tier: tier.LV, EUPerTick: 30, DurationTicks: 5},
			machine: tier.EV,
			want:    Spec{Tier: tier.MV, EUPerTick: 120, DurationTicks: 1},
		},
		{
			name:    "zero eut unchanged",
			oc:      Standard,
			spec:    Spec{Tier: tier.ULV, EUPerTick: 0, DurationTicks: 200},
			machine: tier.MAX,
			want:    Spec{Tier: tier.ULV, EUPerTick: 0, DurationTicks: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(nil, WithOverclock(tt.oc))
			got, err := m.Overclock(tt.spec, tt.machine)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, CanHandle(got, tt.machine) || got == tt.spec)
		})
	}
}

func TestOverclock_Disabled(t *testing.T) {
	spec := Spec{Tier: tier.HV, EUPerTick: 480, DurationTicks: 100}
	got, err := NewModel(nil).Overclock(spec, tier.IV)
	require.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestOverclock_InvalidMachineTier(t *testing.T) {
	m := NewModel(nil, WithOverclock(Standard))
	_, err := m.Overclock(Spec{EUPerTick: 30, DurationTicks: 20}, tier.MAX+1)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeOutOfRange))
}

func TestOverclock_NoOverflow(t *testing.T) {
	tbl, err := tier.NewTable([]int64{math.MaxInt64 / 2, math.MaxInt64})
	require.NoError(t, err)

	m := NewModel(tbl, WithOverclock(Standard))
	spec, err := m.Compute(math.MaxInt64/2, 1000)
	require.NoError(t, err)
	require.Equal(t, tier.Tier(0), spec.Tier)

	got, err := m.Overclock(spec, 1)
	require.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestOverclocker_Validate(t *testing.T) {
	assert.NoError(t, Standard.Validate())
	assert.NoError(t, Perfect.Validate())

	for _, bad := range []Overclocker{{}, {EUMultiplier: 1, DurationDivisor: 1}, {EUMultiplier: 4, DurationDivisor: 0}} {
		err := bad.Validate()
		assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRequest), "%+v", bad)
	}

	m := NewModel(nil, WithOverclock(Overclocker{EUMultiplier: 1, DurationDivisor: 2}))
	_, err := m.Overclock(Spec{Tier: tier.LV, EUPerTick: 30, DurationTicks: 100}, tier.HV)
	assert.Error(t, err)
}

func TestParseOverclocker(t *testing.T) {
	oc, on, err := ParseOverclocker("standard")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, Standard, oc)

	oc, on, err = ParseOverclocker("perfect")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, Perfect, oc)

	_, on, err = ParseOverclocker("none")
	require.NoError(t, err)
	assert.False(t, on)

	_, _, err = ParseOverclocker("turbo")
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRequest))
}
