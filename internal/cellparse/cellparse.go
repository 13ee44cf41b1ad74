// =============================================================================
// Budget & Actual Validator - Numeric Cell Parser
// =============================================================================
//
// This module converts raw spreadsheet cell values into canonical numeric
// values. Report cells arrive in many shapes: plain numbers, currency-
// formatted strings ("$1,234.50"), accounting-style parenthesized negatives
// ("(500)"), or plain text. The parser maps all of them onto a signed float
// or an explicit "unparseable" marker.
//
// PARSING RULES:
//   1. Blank input is unparseable. This is the strict policy: a blank cell is
//      never silently treated as zero.
//   2. Every character outside digits, minus sign, decimal point, comma and
//      parentheses is stripped before interpretation.
//   3. A value wrapped entirely in one parenthesis pair is the negation of
//      its inner magnitude (thousands separators removed first).
//   4. Otherwise thousands separators are removed and the rest must convert
//      as a float.
//
// The parser is a pure function: no side effects, deterministic for
// identical input, never panics.
//
// =============================================================================

package cellparse

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// PARSED NUMBER
// =============================================================================

// ParsedNumber is the result of parsing one cell: a signed floating-point
// value, or the distinguished unparseable marker (Valid == false).
// A ParsedNumber is created fresh per cell and never mutated.
type ParsedNumber struct {
	Value float64
	Valid bool
}

// Number wraps a float64 in a valid ParsedNumber.
func Number(v float64) ParsedNumber {
	return ParsedNumber{Value: v, Valid: true}
}

// Unparseable returns the marker for a cell that has no numeric value.
func Unparseable() ParsedNumber {
	return ParsedNumber{}
}

// String renders the value for reports. Unparseable values render as the
// empty string so CSV cells stay blank rather than showing a fake zero.
func (p ParsedNumber) String() string {
	if !p.Valid {
		return ""
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}

// =============================================================================
// PARSER
// =============================================================================

// stripPattern matches every character that carries no numeric meaning:
// anything other than digits, minus sign, decimal point, comma, parentheses.
var stripPattern = regexp.MustCompile(`[^0-9\-.,()]`)

// Parse converts a raw cell value into a ParsedNumber.
func Parse(cell string) ParsedNumber {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Unparseable()
	}

	// Remove letters, currency symbols and other noise.
	s = stripPattern.ReplaceAllString(s, "")

	// Accounting notation: (X) is the negation of X.
	if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := strings.ReplaceAll(s[1:len(s)-1], ",", "")
		v, err := strconv.ParseFloat(inner, 64)
		if err != nil {
			return Unparseable()
		}
		return Number(-v)
	}

	// Plain notation: drop thousands separators and convert.
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Unparseable()
	}
	return Number(v)
}
