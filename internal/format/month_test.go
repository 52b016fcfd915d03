package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "abril de 2025", MonthLabel(2025, 4))
	assert.Equal(t, "janeiro de 2020", MonthLabel(2020, 1))
	assert.Equal(t, "dezembro de 1999", MonthLabel(1999, 12))
	assert.Equal(t, "", MonthLabel(2025, 0))
	assert.Equal(t, "", MonthLabel(2025, 13))
}

func TestShortMonthLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "abril de 2025", want: "Abr"},
		{label: "março de 2025", want: "Mar"},
		{label: "dezembro de 2024", want: "Dez"},
		{label: "maio de 2025", want: "Mai"},
		{label: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShortMonthLabel(tt.label))
	}
}

func TestParseMonthLabel(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			label := MonthLabel(2025, month)
			year, got, err := ParseMonthLabel(label)
			require.NoError(t, err)
			assert.Equal(t, 2025, year)
			assert.Equal(t, month, got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		year, month, err := ParseMonthLabel("Abril de 2025")
		require.NoError(t, err)
		assert.Equal(t, 2025, year)
		assert.Equal(t, 4, month)
	})

	t.Run("invalid labels", func(t *testing.T) {
		for _, label := range []string{"", "abril", "treze de 2025", "abril de vinte"} {
			_, _, err := ParseMonthLabel(label)
			assert.Error(t, err, "label %q", label)
		}
	})
}
