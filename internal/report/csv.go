// =============================================================================
// Budget & Actual Validator - CSV Export
// =============================================================================
//
// This module writes the mismatch export: one CSV row per attention-needing
// comparison result. The column set below is the contract that downstream
// reporting depends on; changing it breaks consumers.
//
// Unparseable numeric fields export as empty cells, never as a fake zero.
//
// =============================================================================

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/madhukesh048/budget-validator/internal/recon"
	"github.com/madhukesh048/budget-validator/pkg/utils"
)

// CSVHeader is the fixed column set of the mismatch export.
var CSVHeader = []string{
	"Left Row",
	"Left Name",
	"Left Budget",
	"Left Actual",
	"Right Row",
	"Right Name",
	"Right Budget",
	"Right Actual",
	"Notes",
}

// outputNameFormat names each export uniquely so repeated runs never
// overwrite each other.
const outputNameFormat = "mismatches_{uuid}.csv"

// Rows converts the attention-needing results into export rows, header
// excluded. Row indices are the 0-based grid positions the records came
// from; absent right-side fields stay empty.
func Rows(results []recon.ComparisonResult) [][]string {
	var rows [][]string

	for _, r := range results {
		if !r.NeedsAttention() {
			continue
		}

		row := []string{
			strconv.Itoa(r.Left.SourceRow),
			r.Left.DisplayName,
			r.Left.Budget.String(),
			r.Left.Actual.String(),
			"", "", "", "",
			strings.Join(r.Notes, " | "),
		}
		if r.Right != nil {
			row[4] = strconv.Itoa(r.Right.SourceRow)
			row[5] = r.Right.DisplayName
			row[6] = r.Right.Budget.String()
			row[7] = r.Right.Actual.String()
		}

		rows = append(rows, row)
	}

	return rows
}

// WriteCSV writes the mismatch export into outputDir and returns the path of
// the written file. Nothing is written (and the empty string returned) when
// no result needs attention.
func WriteCSV(results []recon.ComparisonResult, outputDir string) (string, error) {
	rows := Rows(results)
	if len(rows) == 0 {
		return "", nil
	}

	if err := utils.EnsureDir(outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, utils.GenerateOutputFileName(outputNameFormat))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write export rows: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return path, nil
}
