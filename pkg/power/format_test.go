package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name       string
		ticks      int64
		useSeconds bool
		want       string
	}{
		{"one tick seconds", 1, true, "0.05 secs (1 tick)"},
		{"seven ticks seconds", 7, true, "0.35 secs (7 ticks)"},
		{"one second", 20, true, "1 secs (20 ticks)"},
		{"two seconds", 40, true, "2 secs"},
		{"cycle seconds", 2400, true, "120 secs"},
		{"one tick", 1, false, "1 tick"},
		{"hundred ticks", 100, false, "100 ticks"},
		{"grouped ticks", 1200, false, "1,200 ticks"},
		{"zero ticks", 0, false, "0 ticks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(Spec{DurationTicks: tt.ticks}, tt.useSeconds)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "48,000", FormatNumber(int64(48000)))
	assert.Equal(t, "1,234.5", FormatNumber(1234.5))
	assert.Equal(t, "0.33", FormatNumber(1.0/3))
	assert.Equal(t, "30", FormatNumber(30))
}
