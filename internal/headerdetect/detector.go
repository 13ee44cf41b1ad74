// =============================================================================
// Budget & Actual Validator - Header Row Detector
// =============================================================================
//
// This module decides heuristically whether the first row of a grid is a
// header row that should be excluded from the data. Reports uploaded by
// users sometimes carry a header row and sometimes do not, and nothing in
// the file format says which.
//
// HEURISTIC:
//   Parse the checked columns of the first few rows as numbers. A header is
//   detected at row 0 when the first row has at most one numeric cell while
//   the remaining scanned rows average at least two. Mostly-text on top of
//   mostly-numbers is what a header looks like.
//
// Absence of a detected header is a legitimate, common outcome, not an
// error; the detector never fails.
//
// =============================================================================

package headerdetect

import (
	"github.com/madhukesh048/budget-validator/internal/cellparse"
)

// DefaultMaxRows is how many leading rows the heuristic scans.
const DefaultMaxRows = 6

// Detect inspects up to maxRows leading rows of the grid and reports whether
// row 0 looks like a header. columns lists which column indices to check;
// out-of-range cells count as non-numeric. maxRows <= 0 falls back to
// DefaultMaxRows.
//
// The second return value is false when no header was detected.
func Detect(rows [][]string, columns []int, maxRows int) (int, bool) {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	// With fewer than two rows there is nothing to compare against.
	if len(rows) < 2 {
		return 0, false
	}

	top := maxRows
	if top > len(rows) {
		top = len(rows)
	}

	counts := make([]int, top)
	for i := 0; i < top; i++ {
		counts[i] = numericCount(rows[i], columns)
	}

	first := counts[0]
	rest := counts[1:]
	if len(rest) == 0 {
		return 0, false
	}

	sum := 0
	for _, c := range rest {
		sum += c
	}
	avgRest := float64(sum) / float64(len(rest))

	// A mostly-unparseable first row above mostly-numeric rows is a header.
	if first <= 1 && avgRest >= 2 {
		return 0, true
	}

	return 0, false
}

// numericCount returns how many of the checked columns of one row parse as
// numeric values.
func numericCount(row []string, columns []int) int {
	count := 0
	for _, col := range columns {
		if col < 0 || col >= len(row) {
			continue
		}
		if cellparse.Parse(row[col]).Valid {
			count++
		}
	}
	return count
}
