package power

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnh/gtpower/pkg/tier"
)

func TestDescribe(t *testing.T) {
	m := NewModel(nil)
	spec, err := m.Compute(480, 100)
	require.NoError(t, err)

	d := m.Describe(spec, true)
	assert.Equal(t, "HV", d.TierName)
	assert.Equal(t, []string{
		"Total: 48,000 EU",
		"Usage: 480 EU/t",
		"Time: 5 secs",
	}, d.Lines())

	d = m.Describe(spec, false)
	assert.Equal(t, "Time: 100 ticks", d.Lines()[2])
}

func TestDescribe_OmitsEmptyFigures(t *testing.T) {
	m := NewModel(nil)

	noPower, err := m.Compute(0, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Time: 1 secs (20 ticks)"}, m.Describe(noPower, true).Lines())

	instant, err := m.Compute(30, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Total: 0 EU", "Usage: 30 EU/t"}, m.Describe(instant, true).Lines())

	assert.Empty(t, m.Describe(Spec{}, true).Lines())
}

func TestDescribe_Steam(t *testing.T) {
	m := NewModel(nil, WithUnit(Steam{}))
	spec, err := m.Compute(8, 400)
	require.NoError(t, err)
	assert.Equal(t, tier.ULV, spec.Tier)

	d := m.Describe(spec, true)
	assert.Equal(t, "6,400 L", d.Total)
	assert.Equal(t, "16 L/t", d.Usage)
}

func TestDescribe_SaturatesLargeTotals(t *testing.T) {
	maxTotal := FormatNumber(int64(math.MaxInt64))

	m := NewModel(nil)
	spec, err := m.Compute(math.MaxInt64/2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), spec.TotalEU())
	assert.Equal(t, maxTotal+" EU", m.Describe(spec, false).Total)

	spec, err = m.Compute(1<<40, 1<<30)
	require.NoError(t, err)
	assert.Equal(t, maxTotal+" EU", m.Describe(spec, false).Total)

	steam := Spec{EUPerTick: math.MaxInt64, DurationTicks: 2}
	assert.Equal(t, maxTotal+" L/t", Steam{}.Rate(steam))
	assert.Equal(t, maxTotal+" L", Steam{}.Total(steam))
}

func TestSaturatingMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"zero", 0, 10, 0},
		{"small", 480, 100, 48000},
		{"exact max", math.MaxInt64, 1, math.MaxInt64},
		{"overflow", math.MaxInt64/2 + 1, 2, math.MaxInt64},
		{"wraps to zero unchecked", 1 << 40, 1 << 30, math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, saturatingMul(tt.a, tt.b))
		})
	}
}

func TestParseUnit(t *testing.T) {
	u, ok := ParseUnit("")
	require.True(t, ok)
	assert.Equal(t, "eu", u.Name())

	u, ok = ParseUnit("steam")
	require.True(t, ok)
	assert.Equal(t, "steam", u.Name())

	_, ok = ParseUnit("rf")
	assert.False(t, ok)
}
