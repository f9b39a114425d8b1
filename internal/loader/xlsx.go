// =============================================================================
// CSV to PDF Card Generator - XLSX Loader
// =============================================================================
//
// Reads card records from the first sheet of an XLSX workbook, with the
// same header/comment/blank-row semantics as the delimited text loader.
//
// =============================================================================

package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

// loadXLSX reads records from an XLSX workbook.
func loadXLSX(path string) ([]types.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	// Only the first sheet is read; additional sheets are ignored.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return rowsToRecords(rows)
}
