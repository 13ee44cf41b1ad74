// =============================================================================
// Budget & Actual Validator - Comparison Results
// =============================================================================
//
// One ComparisonResult is produced for every left-side record with a
// non-blank name. It carries the pairing outcome (exact, fuzzy, or none),
// the per-field agreement classification, and an ordered list of
// human-readable notes explaining everything that was not a clean agreement.
//
// =============================================================================

package recon

// =============================================================================
// MATCH KIND
// =============================================================================

// MatchKind classifies how a left record was paired with a right record.
type MatchKind int

const (
	// MatchNone means no right-side candidate cleared the fuzzy threshold.
	MatchNone MatchKind = iota

	// MatchExact means the normalized keys were equal.
	MatchExact

	// MatchFuzzy means the best similarity candidate was accepted.
	MatchFuzzy
)

// String returns the display name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// =============================================================================
// AGREEMENT
// =============================================================================

// Agreement classifies whether one numeric field agrees across the two sides.
type Agreement int

const (
	// Indeterminate means at least one side had no parseable value (or the
	// record was unmatched), so no numeric verdict is possible.
	Indeterminate Agreement = iota

	// Agree means both sides parsed and differ by at most the tolerance.
	Agree

	// Disagree means both sides parsed and differ by more than the tolerance.
	Disagree
)

// String returns the display name of the agreement state.
func (a Agreement) String() string {
	switch a {
	case Agree:
		return "agree"
	case Disagree:
		return "disagree"
	default:
		return "indeterminate"
	}
}

// =============================================================================
// COMPARISON RESULT
// =============================================================================

// ComparisonResult is the outcome of reconciling one left-side record.
type ComparisonResult struct {
	// Left is the left-side record the comparison started from.
	Left Record

	// Right is the matched right-side record, or nil when Kind is MatchNone.
	Right *Record

	// Kind records how the pairing was made.
	Kind MatchKind

	// FuzzyScore is the accepted similarity score. Meaningful only when
	// Kind is MatchFuzzy; zero otherwise.
	FuzzyScore float64

	// BudgetAgreement classifies the budget fields of the pairing.
	BudgetAgreement Agreement

	// ActualAgreement classifies the actual fields of the pairing.
	ActualAgreement Agreement

	// Notes lists, in order, every condition worth a human's attention:
	// fuzzy match used, missing match, unparseable fields, mismatched values.
	Notes []string
}

// NeedsAttention reports whether this result should appear in the mismatch
// export: unmatched, or disagreeing on at least one numeric field.
// Indeterminate alone does not qualify; it is surfaced through Notes instead.
func (r ComparisonResult) NeedsAttention() bool {
	return r.Kind == MatchNone ||
		r.BudgetAgreement == Disagree ||
		r.ActualAgreement == Disagree
}

// =============================================================================
// RUN RESULT
// =============================================================================

// RunResult is the full outcome of one validation run.
type RunResult struct {
	// Results holds one entry per eligible left-side row, in row order.
	Results []ComparisonResult

	// HeaderRow is the detected header row index, or -1 when none was
	// detected (or detection was disabled).
	HeaderRow int

	// TotalChecked is the number of left-side records compared.
	TotalChecked int

	// TotalAttention is the number of results needing attention.
	TotalAttention int
}
