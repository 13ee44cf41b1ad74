// =============================================================================
// Budget & Actual Validator - Console Listing
// =============================================================================
//
// Renders the validation results as a human-readable listing, block per
// result, followed by the run summary. By default only attention-needing
// results are listed; showAll switches to the full list.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/madhukesh048/budget-validator/internal/recon"
)

// WriteListing renders the result listing and summary to w.
func WriteListing(w io.Writer, run *recon.RunResult, showAll bool) {
	fmt.Fprintln(w, "=== Validation Results ===")

	listed := 0
	for _, r := range run.Results {
		if !showAll && !r.NeedsAttention() {
			continue
		}
		listed++
		writeResult(w, r)
	}

	if listed == 0 {
		if showAll {
			fmt.Fprintln(w, "No parameters checked.")
		} else {
			fmt.Fprintln(w, "All values match.")
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total parameters checked:  %d\n", run.TotalChecked)
	fmt.Fprintf(w, "Total needing attention:   %d\n", run.TotalAttention)
}

// writeResult renders one comparison result block.
func writeResult(w io.Writer, r recon.ComparisonResult) {
	marker := "✓"
	if r.NeedsAttention() {
		marker = "✗"
	}

	fmt.Fprintf(w, "%s %s (left row %d)\n", marker, r.Left.DisplayName, r.Left.SourceRow)

	if r.Right != nil {
		fmt.Fprintf(w, "    Matched to: %s (right row %d, %s match)\n",
			r.Right.DisplayName, r.Right.SourceRow, r.Kind)
		fmt.Fprintf(w, "    Budget: left %s | right %s (%s)\n",
			orDash(r.Left.Budget.String()), orDash(r.Right.Budget.String()), r.BudgetAgreement)
		fmt.Fprintf(w, "    Actual: left %s | right %s (%s)\n",
			orDash(r.Left.Actual.String()), orDash(r.Right.Actual.String()), r.ActualAgreement)
	} else {
		fmt.Fprintf(w, "    Matched to: (no match)\n")
		fmt.Fprintf(w, "    Budget: left %s | Actual: left %s\n",
			orDash(r.Left.Budget.String()), orDash(r.Left.Actual.String()))
	}

	if len(r.Notes) > 0 {
		fmt.Fprintf(w, "    Notes: %s\n", strings.Join(r.Notes, " | "))
	}
}

// orDash substitutes a dash for empty (unparseable) values in the listing.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
