package cellparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_PlainAndFormattedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		cell  string
		value float64
	}{
		{"plain integer", "1000", 1000},
		{"plain decimal", "950.5", 950.5},
		{"thousands separator", "1,234.50", 1234.50},
		{"currency symbol", "$1,234.50", 1234.50},
		{"negative sign", "-500", -500},
		{"parenthesized", "(500)", -500},
		{"parenthesized with separator", "(1,234.50)", -1234.50},
		{"surrounding whitespace", "  42  ", 42},
		{"currency inside parentheses", "($2,000)", -2000},
		{"letters mixed with digits", "USD 300", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.cell)

			assert.True(t, got.Valid, "expected %q to parse", tt.cell)
			assert.InDelta(t, tt.value, got.Value, 1e-9)
		})
	}
}

func TestParse_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		cell string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"letters only", "abc"},
		{"empty parentheses", "()"},
		{"letters in parentheses", "(abc)"},
		{"two decimal points", "1.2.3"},
		{"lone minus", "-"},
		{"unbalanced parenthesis", "(500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.cell)

			assert.False(t, got.Valid, "expected %q to be unparseable", tt.cell)
		})
	}
}

func TestParse_ParenthesesNegateTheInnerMagnitude(t *testing.T) {
	// (X) must always equal the negation of parsing X.
	for _, inner := range []string{"1", "500", "1,234.50", "0.25"} {
		plain := Parse(inner)
		wrapped := Parse("(" + inner + ")")

		assert.True(t, plain.Valid)
		assert.True(t, wrapped.Valid)
		assert.InDelta(t, -plain.Value, wrapped.Value, 1e-9)
	}
}

func TestParse_Deterministic(t *testing.T) {
	for _, cell := range []string{"", "abc", "(1,234.50)", "$99"} {
		assert.Equal(t, Parse(cell), Parse(cell))
	}
}

func TestParsedNumber_String(t *testing.T) {
	assert.Equal(t, "-1234.5", Number(-1234.5).String())
	assert.Equal(t, "1000", Number(1000).String())
	assert.Equal(t, "", Unparseable().String())
}
