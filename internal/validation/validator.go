// =============================================================================
// CSV to PDF Card Generator - Record Validation
// =============================================================================
//
// This module checks loaded records before any rendering starts. Validation
// is fail-fast for the whole run: all records are checked, all violations
// are collected, and a single error aborts the pipeline. Nothing is drawn
// for a file that contains malformed rows.
//
// Only the number field is validated; name and extra-info are opaque text.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/checksum"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ValidationError describes a single invalid record field.
type ValidationError struct {
	// Row is the 1-based row number in the input file.
	Row int

	// Field is the name of the offending field.
	Field string

	// Err is the underlying cause, e.g. checksum.ErrInvalidNumber.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: field %q: %v", e.Row, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors aggregates all violations found in one input file.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d invalid record(s):\n%s", len(errs), strings.Join(msgs, "\n"))
}

// Unwrap exposes the individual errors to errors.Is / errors.As.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateRecords checks every record and returns nil, or a
// ValidationErrors value listing all violations.
func ValidateRecords(records []types.Record) error {
	var errs ValidationErrors
	for _, rec := range records {
		if err := validateNumber(rec.Number); err != nil {
			errs = append(errs, &ValidationError{
				Row:   rec.Row,
				Field: "number",
				Err:   err,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateNumber requires a non-empty ASCII digit string. The check digit
// computation applies the same rule, so validating here means the
// renderer never sees input it would reject for its format.
func validateNumber(number string) error {
	_, err := checksum.Compute(number)
	return err
}
