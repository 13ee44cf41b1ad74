// =============================================================================
// Budget & Actual Validator - Records
// =============================================================================
//
// A Record is one named line item on one side of the report: its origin row,
// the name as displayed, the lowercased key used for matching, and the two
// parsed numeric fields. Records are created during index construction or
// left-side iteration and never mutated afterwards.
//
// =============================================================================

package recon

import (
	"strings"

	"github.com/madhukesh048/budget-validator/internal/cellparse"
	"github.com/madhukesh048/budget-validator/internal/grid"
)

// Record represents one named line item on one side of the report.
type Record struct {
	// SourceRow is the 0-based row index in the grid the record came from.
	// Used only for reporting.
	SourceRow int

	// DisplayName is the original-case, trimmed name.
	DisplayName string

	// NormalizedKey is the lowercased trimmed name, used for exact equality
	// and similarity scoring.
	NormalizedKey string

	// Budget is the parsed budget field.
	Budget cellparse.ParsedNumber

	// Actual is the parsed actual field.
	Actual cellparse.ParsedNumber
}

// NormalizeKey produces the matching key for a raw name cell.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// recordAt builds the Record for one grid row using the given column roles.
// It returns false when the name cell is blank, in which case the row takes
// no part in matching or comparison.
func recordAt(g *grid.Grid, row, nameCol, budgetCol, actualCol int) (Record, bool) {
	name := strings.TrimSpace(g.Cell(row, nameCol))
	if name == "" {
		return Record{}, false
	}

	return Record{
		SourceRow:     row,
		DisplayName:   name,
		NormalizedKey: strings.ToLower(name),
		Budget:        cellparse.Parse(g.Cell(row, budgetCol)),
		Actual:        cellparse.Parse(g.Cell(row, actualCol)),
	}, true
}
