// =============================================================================
// Budget & Actual Validator - CSV Loader
// =============================================================================
//
// Loads a CSV file into a raw Grid. CSV input is a convenience next to the
// primary XLSX path: the same reports are sometimes exported as CSV, and the
// rest of the pipeline does not care where the grid came from.
//
// =============================================================================

package grid

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// LoadCSV reads a CSV file into a Grid. Rows may have varying field counts;
// the grid keeps them ragged exactly as the file had them.
func LoadCSV(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	// Reports are not guaranteed rectangular.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return &Grid{
		Rows:   rows,
		Source: path,
	}, nil
}
