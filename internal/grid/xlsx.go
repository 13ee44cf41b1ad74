// =============================================================================
// Budget & Actual Validator - XLSX Loader
// =============================================================================
//
// Loads one sheet of an XLSX workbook into a raw Grid using excelize.
// Cells are read as displayed strings; all numeric interpretation happens
// later in the cellparse module, so parsing policy lives in exactly one
// place.
//
// =============================================================================

package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the named sheet of the workbook at path into a Grid.
// An empty sheet name selects the first sheet. A missing file, an empty
// workbook or an unknown sheet name is an input-fatal error.
func LoadXLSX(path, sheet string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return &Grid{
		Rows:   rows,
		Source: path,
		Sheet:  sheet,
	}, nil
}
