package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundNGN(t *testing.T) {
	u := NewCurrencyUtils()

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"already two decimals", 12.34, 12.34},
		{"rounds down", 1.234, 1.23},
		{"rounds up", 1.236, 1.24},
		{"midpoint rounds to even below", 0.125, 0.12},
		{"midpoint rounds to even above", 0.375, 0.38},
		{"midpoint with even kobo stays", 0.625, 0.62},
		{"zero", 0, 0},
		{"derived stream amount", 100*1.8 + 10*1.8, 198.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, u.RoundNGN(tt.value), 1e-9)
		})
	}
}

func TestFormatNGN(t *testing.T) {
	u := NewCurrencyUtils()

	require.Equal(t, "₦5000.00", u.FormatNGN(5000))
	require.Equal(t, "₦0.50", u.FormatNGN(0.5))
	require.Equal(t, "₦1234.56", u.FormatNGN(1234.56))
}

func TestSecondsToHours(t *testing.T) {
	u := NewCurrencyUtils()

	require.InDelta(t, 2.0, u.SecondsToHours(7200), 1e-9)
	require.InDelta(t, 1.5, u.SecondsToHours(5400), 1e-9)
	require.InDelta(t, 0.34, u.SecondsToHours(1234), 1e-9)
	require.Zero(t, u.SecondsToHours(0))
}
