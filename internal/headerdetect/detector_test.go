package headerdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sixColumns = []int{0, 1, 2, 3, 4, 5}

func TestDetect_TextHeaderAboveNumericRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Budget", "Actual", "Name", "Budget", "Actual"},
		{"Salaries", "1000", "950", "Salaries", "1000", "900"},
		{"Rent", "500", "500", "Rnt", "500", "500"},
		{"Travel", "250", "260", "Travel", "250", "250"},
	}

	row, found := Detect(rows, sixColumns, DefaultMaxRows)

	assert.True(t, found)
	assert.Equal(t, 0, row)
}

func TestDetect_NoHeaderWhenFirstRowIsNumeric(t *testing.T) {
	rows := [][]string{
		{"Salaries", "1000", "950", "Salaries", "1000", "900"},
		{"Rent", "500", "500", "Rnt", "500", "500"},
	}

	_, found := Detect(rows, sixColumns, DefaultMaxRows)

	assert.False(t, found)
}

func TestDetect_NoHeaderWhenRestIsMostlyText(t *testing.T) {
	// First row looks like a header but there is no numeric data below it,
	// so nothing supports the header hypothesis.
	rows := [][]string{
		{"Name", "Budget", "Actual", "", "", ""},
		{"Salaries", "pending", "tbd", "", "", ""},
		{"Rent", "n/a", "n/a", "", "", ""},
	}

	_, found := Detect(rows, sixColumns, DefaultMaxRows)

	assert.False(t, found)
}

func TestDetect_TooFewRows(t *testing.T) {
	_, found := Detect([][]string{{"Name", "Budget"}}, sixColumns, DefaultMaxRows)
	assert.False(t, found)

	_, found = Detect(nil, sixColumns, DefaultMaxRows)
	assert.False(t, found)
}

func TestDetect_ScansAtMostMaxRows(t *testing.T) {
	// Numeric data appears only after the scan window; within the window the
	// rows below the candidate header are text, so no header is detected.
	rows := [][]string{
		{"Name", "Budget", "Actual", "", "", ""},
		{"a", "b", "c", "", "", ""},
		{"d", "e", "f", "", "", ""},
	}
	for i := 0; i < 10; i++ {
		rows = append(rows, []string{"Item", "100", "100", "Item", "100", "100"})
	}

	_, found := Detect(rows, sixColumns, 3)

	assert.False(t, found)
}

func TestDetect_IgnoresOutOfRangeColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Budget"},
		{"Salaries", "1000", "950", "Salaries", "1000", "900"},
		{"Rent", "500", "500", "Rnt", "500", "500"},
	}

	row, found := Detect(rows, sixColumns, DefaultMaxRows)

	assert.True(t, found)
	assert.Equal(t, 0, row)
}
