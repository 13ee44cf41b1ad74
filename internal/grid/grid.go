// =============================================================================
// Budget & Actual Validator - Grid Type
// =============================================================================
//
// This module defines the raw two-dimensional grid of cell values that the
// reconciliation pipeline operates on, along with the loaders that produce
// it from spreadsheet files. File-format decoding itself is delegated to
// excelize (XLSX) and encoding/csv; the rest of the pipeline only ever sees
// this grid.
//
// A grid is read-only once loaded: loaders build it, every later stage only
// reads it.
//
// =============================================================================

package grid

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Grid is a row-major grid of raw cell values as read from one sheet.
// Rows may be ragged (trailing empty cells are not materialized by the
// XLSX reader), so cell access goes through Cell.
type Grid struct {
	// Rows holds the raw cell values, outer slice per row.
	Rows [][]string

	// Source is the path of the file the grid was loaded from.
	Source string

	// Sheet is the workbook sheet the grid came from (empty for CSV input).
	Sheet string
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int {
	return len(g.Rows)
}

// ColumnCount returns the width of the widest row.
func (g *Grid) ColumnCount() int {
	max := 0
	for _, row := range g.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the raw value at (row, col), or the empty string when the
// position lies outside the grid or beyond a short row.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	r := g.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// HasColumn reports whether at least one row reaches the given column index.
func (g *Grid) HasColumn(col int) bool {
	return col >= 0 && col < g.ColumnCount()
}

// Load reads a grid from the given file, dispatching on the file extension.
// sheet selects the workbook sheet for XLSX input and is ignored for CSV.
func Load(path, sheet string) (*Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltm", ".xltx":
		return LoadXLSX(path, sheet)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .xlsx or .csv)", filepath.Ext(path))
	}
}
