package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/tier"
)

func smallTable(t *testing.T) *tier.Table {
	t.Helper()
	tbl, err := tier.NewTable([]int64{32, 128, 512, 2048})
	require.NoError(t, err)
	return tbl
}

func TestNewModel_NilTableUsesDefault(t *testing.T) {
	m := NewModel(nil)
	assert.Same(t, tier.Default(), m.Table())
}

func TestCompute(t *testing.T) {
	m := NewModel(smallTable(t))

	spec, err := m.Compute(480, 100)
	require.NoError(t, err)
	assert.Equal(t, Spec{Tier: 2, EUPerTick: 480, DurationTicks: 100}, spec)
	assert.Equal(t, int64(48000), spec.TotalEU())

	zero, err := m.Compute(0, 0)
	require.NoError(t, err)
	assert.Equal(t, tier.Tier(0), zero.Tier)
}

func TestCompute_Idempotent(t *testing.T) {
	m := NewModel(nil)
	for _, eut := range []int64{0, 7, 30, 480, 30720, 1 << 40} {
		a, err := m.Compute(eut, 20)
		require.NoError(t, err)
		b, err := m.Compute(eut, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCompute_NegativeInputs(t *testing.T) {
	m := NewModel(nil)

	tests := []struct {
		name     string
		eut      int64
		duration int64
	}{
		{"negative eut", -1, 100},
		{"negative duration", 480, -1},
		{"both negative", -30, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Compute(tt.eut, tt.duration)
			require.Error(t, err)
			assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidRecipeCost))

			var se *gterrors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.eut, se.Context["eut"])
			assert.Equal(t, tt.duration, se.Context["duration"])
		})
	}
}

func TestCanHandle_Monotonic(t *testing.T) {
	m := NewModel(nil)
	spec, err := m.Compute(480, 100)
	require.NoError(t, err)

	assert.False(t, CanHandle(spec, tier.MV))
	assert.True(t, CanHandle(spec, tier.HV))

	for o1 := tier.ULV; o1 <= tier.MAX; o1++ {
		for o2 := o1; o2 <= tier.MAX; o2++ {
			if CanHandle(spec, o1) {
				assert.True(t, CanHandle(spec, o2), "observer %d handles, %d must too", o1, o2)
			}
		}
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "LuV (6)", NewModel(nil).TierString(tier.LuV))
	assert.Equal(t, "T1 (1)", NewModel(smallTable(t)).TierString(1))
}
