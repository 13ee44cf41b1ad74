// =============================================================================
// Budget & Actual Validator - Record Index
// =============================================================================
//
// The Index maps normalized names to right-side Records. It is built once
// per run and then only queried: an exact lookup first, and a full scan of
// the sorted keys when the engine falls back to fuzzy matching.
//
// Rows with a blank name are never indexed, so they can never be selected
// as a match. A later row with a duplicate key overwrites the earlier entry
// (last write wins); duplicated names in a report are the data's problem,
// not the validator's.
//
// =============================================================================

package recon

import (
	"sort"

	"github.com/madhukesh048/budget-validator/internal/grid"
)

// Index maps normalized name keys to right-side records.
type Index struct {
	records map[string]Record
}

// BuildIndex constructs the right-side index from the grid. excludeRow
// (typically a detected header row) is skipped entirely; pass -1 to index
// every row.
func BuildIndex(g *grid.Grid, nameCol, budgetCol, actualCol, excludeRow int) *Index {
	idx := &Index{records: make(map[string]Record)}

	for row := 0; row < g.RowCount(); row++ {
		if row == excludeRow {
			continue
		}
		rec, ok := recordAt(g, row, nameCol, budgetCol, actualCol)
		if !ok {
			continue
		}
		idx.records[rec.NormalizedKey] = rec
	}

	return idx
}

// Lookup returns the record stored under the exact normalized key.
func (idx *Index) Lookup(key string) (Record, bool) {
	rec, ok := idx.records[key]
	return rec, ok
}

// Keys returns every indexed key in sorted order. The engine scans fuzzy
// candidates in this order so that reruns on identical input produce
// identical results, ties included.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.records))
	for k := range idx.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}
