// =============================================================================
// Budget & Actual Validator - Reconciliation Engine
// =============================================================================
//
// This module contains the core reconciliation logic. For every left-side
// record it finds the matching right-side record (exact key first, best
// fuzzy candidate above the threshold otherwise) and classifies each
// numeric field as agreeing, disagreeing, or indeterminate.
//
// PIPELINE (one synchronous run per grid):
//   1. Validate the column mapping against the grid (fail fast, no partial
//      results on a malformed dataset)
//   2. Optionally detect and exclude a header row
//   3. Build the right-side index
//   4. Iterate the left side, producing one ComparisonResult per eligible row
//
// Per-row conditions never abort the run: an unparseable cell degrades to an
// indeterminate field, a missing match to MatchNone. Only dataset-shape
// violations are fatal.
//
// The engine holds no state between runs; a re-triggered validation starts
// from a freshly loaded grid.
//
// =============================================================================

package recon

import (
	"fmt"

	"github.com/madhukesh048/budget-validator/internal/cellparse"
	"github.com/madhukesh048/budget-validator/internal/grid"
	"github.com/madhukesh048/budget-validator/internal/headerdetect"
	"github.com/madhukesh048/budget-validator/internal/similarity"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures one reconciliation run.
type Options struct {
	// LeftName, LeftBudget, LeftActual are the 0-based column indices of the
	// left side; RightName, RightBudget, RightActual of the right side.
	LeftName    int
	LeftBudget  int
	LeftActual  int
	RightName   int
	RightBudget int
	RightActual int

	// Tolerance is the maximum absolute difference for two parsed values to
	// agree. The boundary is inclusive: a difference of exactly Tolerance
	// agrees. Must be >= 0.
	Tolerance float64

	// FuzzyThreshold is the minimum similarity score for a fuzzy match to be
	// accepted, inclusive. Must be in [0, 1].
	FuzzyThreshold float64

	// AutoDetectHeader enables the header row heuristic. A detected header
	// row is excluded from both sides.
	AutoDetectHeader bool

	// StartRow and EndRow restrict which left-side rows are checked.
	// EndRow == -1 means "through the last row". The right-side index always
	// covers the whole grid.
	StartRow int
	EndRow   int
}

// columns returns all six column indices for range checks and header
// detection.
func (o Options) columns() []int {
	return []int{
		o.LeftName, o.LeftBudget, o.LeftActual,
		o.RightName, o.RightBudget, o.RightActual,
	}
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine reconciles the two sides of one grid. It is cheap to construct and
// carries no state across runs.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// ValidateGrid checks the dataset shape before any row is processed. Every
// configured column must exist in the grid; anything less is input-fatal.
func (e *Engine) ValidateGrid(g *grid.Grid) error {
	width := g.ColumnCount()
	for _, col := range e.opts.columns() {
		if col < 0 || col >= width {
			return fmt.Errorf("column index %d is out of range for a grid with %d column(s)", col, width)
		}
	}
	if e.opts.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %v", e.opts.Tolerance)
	}
	if e.opts.FuzzyThreshold < 0 || e.opts.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy threshold must be in [0, 1], got %v", e.opts.FuzzyThreshold)
	}
	return nil
}

// Run executes the full pipeline for one grid and returns the ordered
// results. The grid is treated as read-only throughout.
func (e *Engine) Run(g *grid.Grid) (*RunResult, error) {
	if err := e.ValidateGrid(g); err != nil {
		return nil, err
	}

	// Header detection. A detected header row is excluded from the index
	// and from left-side iteration.
	headerRow := -1
	if e.opts.AutoDetectHeader {
		if row, found := headerdetect.Detect(g.Rows, e.opts.columns(), headerdetect.DefaultMaxRows); found {
			headerRow = row
		}
	}

	idx := BuildIndex(g, e.opts.RightName, e.opts.RightBudget, e.opts.RightActual, headerRow)

	run := &RunResult{HeaderRow: headerRow}

	start, end := e.leftRange(g)
	for row := start; row <= end; row++ {
		if row == headerRow {
			continue
		}
		left, ok := recordAt(g, row, e.opts.LeftName, e.opts.LeftBudget, e.opts.LeftActual)
		if !ok {
			continue
		}

		result := e.compare(left, idx)
		run.Results = append(run.Results, result)
		run.TotalChecked++
		if result.NeedsAttention() {
			run.TotalAttention++
		}
	}

	return run, nil
}

// leftRange resolves the configured row restriction against the grid bounds.
func (e *Engine) leftRange(g *grid.Grid) (int, int) {
	start := e.opts.StartRow
	if start < 0 {
		start = 0
	}
	end := e.opts.EndRow
	if end == -1 || end >= g.RowCount() {
		end = g.RowCount() - 1
	}
	return start, end
}

// =============================================================================
// PER-RECORD COMPARISON
// =============================================================================

// compare reconciles one left record against the right-side index.
func (e *Engine) compare(left Record, idx *Index) ComparisonResult {
	result := ComparisonResult{Left: left}

	// Exact key match takes precedence over any fuzzy candidate.
	if rec, ok := idx.Lookup(left.NormalizedKey); ok {
		result.Right = &rec
		result.Kind = MatchExact
	} else if rec, score, ok := e.bestFuzzy(left.NormalizedKey, idx); ok {
		result.Right = &rec
		result.Kind = MatchFuzzy
		result.FuzzyScore = score
		result.Notes = append(result.Notes, fmt.Sprintf("Fuzzy match (score %.2f)", score))
	} else {
		result.Kind = MatchNone
		result.Notes = append(result.Notes, "No matching parameter found on right side")
		// Unmatched records carry no numeric verdict.
		result.BudgetAgreement = Indeterminate
		result.ActualAgreement = Indeterminate
		return result
	}

	result.BudgetAgreement = e.agreement(left.Budget, result.Right.Budget)
	result.ActualAgreement = e.agreement(left.Actual, result.Right.Actual)

	switch result.BudgetAgreement {
	case Indeterminate:
		result.Notes = append(result.Notes, "Budget unparsable on one side")
	case Disagree:
		result.Notes = append(result.Notes,
			fmt.Sprintf("Budget mismatch (left %s, right %s)", left.Budget, result.Right.Budget))
	}

	switch result.ActualAgreement {
	case Indeterminate:
		result.Notes = append(result.Notes, "Actual unparsable on one side")
	case Disagree:
		result.Notes = append(result.Notes,
			fmt.Sprintf("Actual mismatch (left %s, right %s)", left.Actual, result.Right.Actual))
	}

	return result
}

// bestFuzzy scans every indexed key in sorted order and returns the highest
// scoring candidate at or above the threshold. Strictly-greater comparison
// keeps the first (lexicographically smallest) key on a tie, which makes
// reruns deterministic.
func (e *Engine) bestFuzzy(key string, idx *Index) (Record, float64, bool) {
	var best Record
	bestScore := -1.0

	for _, candidate := range idx.Keys() {
		score := similarity.Score(key, candidate)
		if score > bestScore {
			bestScore = score
			best, _ = idx.Lookup(candidate)
		}
	}

	if bestScore >= 0 && bestScore >= e.opts.FuzzyThreshold {
		return best, bestScore, true
	}
	return Record{}, 0, false
}

// agreement classifies one numeric field pair. Either side unparseable
// yields Indeterminate; otherwise the absolute difference is checked against
// the tolerance, boundary inclusive.
func (e *Engine) agreement(left, right cellparse.ParsedNumber) Agreement {
	if !left.Valid || !right.Valid {
		return Indeterminate
	}
	diff := left.Value - right.Value
	if diff < 0 {
		diff = -diff
	}
	if diff <= e.opts.Tolerance {
		return Agree
	}
	return Disagree
}
