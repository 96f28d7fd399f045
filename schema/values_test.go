package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"integer", "50", "50", nil},
		{"two decimals", "50.25", "50.25", nil},
		{"negative", "-10.00", "-10", nil},
		{"surrounding space", "  75.00  ", "75", nil},
		{"empty", "", "", ErrEmptyValue},
		{"blank", "   ", "", ErrEmptyValue},
		{"dollar sign", "$50", "", ErrCurrencySymbol},
		{"euro sign", "€50", "", ErrCurrencySymbol},
		{"pound sign", "£50", "", ErrCurrencySymbol},
		{"thousands separator", "1,500", "", ErrCurrencySymbol},
		{"internal space", "1 500", "", ErrCurrencySymbol},
		{"leading plus", "+50", "", ErrLeadingPlus},
		{"not a number", "fifty", "", ErrNotNumeric},
		{"three decimals", "50.125", "", ErrTooManyDecimals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseNonNegativeAmount(t *testing.T) {
	_, err := ParseNonNegativeAmount("-5.00")
	assert.ErrorIs(t, err, ErrNegative)

	d, err := ParseNonNegativeAmount("0")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("10.375")
	require.NoError(t, err, "dimensions accept arbitrary precision")
	assert.Equal(t, "10.375", d.String())

	_, err = ParseDimension("-1")
	assert.ErrorIs(t, err, ErrNegative)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"iso", "2026-03-15"},
		{"slashed iso", "2026/03/15"},
		{"us", "03/15/2026"},
		{"timestamp", "2026-03-15T10:30:00Z"},
		{"bare timestamp", "2026-03-15T10:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v", got)
		})
	}

	_, err := ParseDate("15th of March")
	assert.ErrorIs(t, err, ErrBadDate)
	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestParseDateDayFirstFallback(t *testing.T) {
	// 25/12 only works day-first; taken as Christmas, not month 25.
	got, err := ParseDate("25/12/2026")
	require.NoError(t, err)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"commas", "100, 200, 300", []string{"100", "200", "300"}},
		{"newlines", "100\n200\n300", []string{"100", "200", "300"}},
		{"tabs", "a\tb", []string{"a", "b"}},
		{"mixed with empties", "100,,\n ,200", []string{"100", "200"}},
		{"single", "100", []string{"100"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitValues(tt.input))
		})
	}
}

func TestHasControlChars(t *testing.T) {
	assert.False(t, HasControlChars("plain text"))
	assert.False(t, HasControlChars("tabs\tand\nnewlines\r"))
	assert.True(t, HasControlChars("null\x00byte"))
	assert.True(t, HasControlChars("bell\x07"))
	assert.True(t, HasControlChars("delete\x7f"))
}
