// =============================================================================
// CSV to PDF Card Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - loader
//   - validation
//   - assembler
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record represents a single input row: one card to render.
// Records are immutable once loaded and keep the order of the input file.
type Record struct {
	// Name is the label printed on the card.
	Name string

	// Number is the numeric payload. The check digit is not part of the
	// record; it is recomputed whenever the barcode is rendered.
	Number string

	// ExtraInfo is free-form text carried along with the record.
	// It is treated as opaque character data.
	ExtraInfo string

	// Row is the 1-based row number in the source file, counting the
	// header row. Used for error reporting.
	Row int
}

// Result describes the outcome of rendering a single record.
type Result struct {
	// Record is the input record this result belongs to.
	Record Record

	// Success indicates whether the card was drawn completely.
	Success bool

	// Error holds the failure that stopped this record, if any.
	Error error
}
