// =============================================================================
// CSV to PDF Card Generator - Record Loader
// =============================================================================
//
// This module reads card records from the input file. Two formats are
// supported:
//   - Delimited text (CSV and friends), via encoding/csv
//   - XLSX workbooks, via excelize (first sheet only)
//
// Both paths share the same row semantics:
//   - The first row is a header and is discarded unconditionally. No schema
//     validation is performed on it.
//   - Every following row maps to (name, number, extra_info) in fixed
//     order. Fields are trimmed. Rows with fewer than three fields yield
//     empty strings for the missing trailing fields; extra fields are
//     ignored.
//   - EmptyLinePolicy: rows whose fields are all empty are skipped,
//     wherever they appear in the file.
//   - Rows whose first field starts with "#" are treated as comments and
//     skipped.
//
// LIMITATION: a delimiter inside an unquoted field misaligns that row.
// There is no escaping support beyond what encoding/csv provides.
//
// =============================================================================

package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

// fieldCount is the fixed record schema width: name, number, extra_info.
const fieldCount = 3

// Settings contains the input parsing options.
type Settings struct {
	// Delimiter separates fields in delimited text input.
	// Accepts a literal character or the names "tab" and "pipe".
	Delimiter string
}

// =============================================================================
// LOADING
// =============================================================================

// LoadRecords reads all records from the given file, in file order.
// The loader is selected by the file extension: ".xlsx" uses the XLSX
// loader, everything else is read as delimited text.
//
// A missing input file is reported with an error wrapping fs.ErrNotExist.
func LoadRecords(path string, settings Settings) ([]types.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}
	return loadCSV(path, settings)
}

// recordFromRow converts one raw row to a Record. The second return value
// is false for rows that must be skipped (blank rows and comment rows).
func recordFromRow(fields []string, row int) (types.Record, bool) {
	trimmed := make([]string, fieldCount)
	empty := true
	for i := 0; i < fieldCount && i < len(fields); i++ {
		trimmed[i] = strings.TrimSpace(fields[i])
		if trimmed[i] != "" {
			empty = false
		}
	}
	if empty {
		return types.Record{}, false
	}
	if strings.HasPrefix(trimmed[0], "#") {
		return types.Record{}, false
	}

	return types.Record{
		Name:      trimmed[0],
		Number:    trimmed[1],
		ExtraInfo: trimmed[2],
		Row:       row,
	}, true
}

// rowsToRecords applies the shared row semantics to raw rows, header
// included as rows[0].
func rowsToRecords(rows [][]string) ([]types.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file is empty (no header row)")
	}

	// rows[0] is the header; discarded without inspection.
	records := make([]types.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, ok := recordFromRow(row, i+2)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
