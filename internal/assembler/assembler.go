// =============================================================================
// CSV to PDF Card Generator - Document Assembler
// =============================================================================
//
// This module drives the card rendering pipeline. For each record, in
// file order:
//
//   1. Render the barcode into a temporary image keyed by the record
//      number ("barcode_<number>.png" in the per-run temp directory).
//   2. Draw the card frame, the fitted name label, the barcode image,
//      the number caption, and the extra-info corner label.
//   3. Delete the temporary image, unconditionally, even when a draw step
//      failed.
//
// Processing is strictly sequential. This is load-bearing: the temporary
// image name is derived from the record number and is deleted before the
// next record starts, so two records with the same number may reuse the
// path safely. Do not parallelize this loop.
//
// The two collaborator boundaries are expressed as small interfaces so
// the barcode and PDF libraries stay swappable.
//
// =============================================================================

package assembler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

// =============================================================================
// COLLABORATOR CONTRACTS
// =============================================================================

// BarcodeEncoder produces a barcode image file for a record number.
// The encoded payload (number normalization plus check digit) is the
// encoder's concern; the assembler only hands over the raw number.
type BarcodeEncoder interface {
	Render(number, destPath string) error
}

// DocumentSink receives the drawing primitives for the output document.
// A sink starts with exactly one empty page.
type DocumentSink interface {
	// PageSize returns the page dimensions in millimetres.
	PageSize() (width, height float64)

	// NextPage appends a new empty page and makes it current.
	NextPage()

	// PageCount returns the number of pages so far.
	PageCount() int

	// DrawFrame draws the card outline.
	DrawFrame(x, y, width, height float64)

	// DrawFittedText draws text centered on centerX with its baseline at
	// baselineY, shrinking the font from size until it fits maxWidth.
	DrawFittedText(centerX, baselineY, maxWidth, size float64, text string)

	// DrawRightAlignedText draws text with its right edge at rightX and
	// its baseline at baselineY.
	DrawRightAlignedText(rightX, baselineY, size float64, text string)

	// DrawImageFile draws an image file into the given box. The file may
	// be deleted once the call returns.
	DrawImageFile(path string, x, y, width, height float64) error

	// Err reports the sink's sticky error state.
	Err() error
}

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler renders records onto a document sink.
type Assembler struct {
	layout  config.Layout
	encoder BarcodeEncoder
	sink    DocumentSink
	tempDir string
	log     *slog.Logger
}

// New creates an assembler. tempDir must exist and is owned by the
// caller; the assembler only places its transient barcode images there.
func New(cfg *config.Config, encoder BarcodeEncoder, sink DocumentSink, tempDir string, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{
		layout:  cfg.Layout,
		encoder: encoder,
		sink:    sink,
		tempDir: tempDir,
		log:     log,
	}
}

// Run renders all records, in order, onto the sink. It returns one
// Result per attempted record. The first failure aborts the run; records
// after it are not attempted (no retries, no skipping).
func (a *Assembler) Run(records []types.Record) ([]types.Result, error) {
	lay := a.layout
	_, pageHeight := a.sink.PageSize()
	columns := len(lay.ColumnX)

	results := make([]types.Result, 0, len(records))

	y := lay.RowStartY
	for i, rec := range records {
		col := i % columns
		if i > 0 && col == 0 {
			y += lay.RowStep
		}

		// Start a new page when the next row would not fit.
		if y+lay.CardHeight > pageHeight-lay.BottomMargin {
			a.sink.NextPage()
			y = lay.RowStartY
		}

		err := a.renderCard(rec, lay.ColumnX[col], y)
		results = append(results, types.Result{
			Record:  rec,
			Success: err == nil,
			Error:   err,
		})
		if err != nil {
			return results, fmt.Errorf("record %d (%s): %w", i+1, rec.Name, err)
		}

		a.log.Debug("card rendered",
			"name", rec.Name,
			"number", rec.Number,
			"page", a.sink.PageCount(),
		)
	}

	return results, a.sink.Err()
}

// renderCard draws one card at the given position. The temporary barcode
// image lives only for the duration of this call.
func (a *Assembler) renderCard(rec types.Record, x, y float64) (err error) {
	imagePath := filepath.Join(a.tempDir, "barcode_"+rec.Number+".png")

	if err := a.encoder.Render(rec.Number, imagePath); err != nil {
		return err
	}
	// The image must not outlive this record, failed draw included.
	defer os.Remove(imagePath)

	lay := a.layout

	a.sink.DrawFrame(x, y, lay.CardWidth, lay.CardHeight)

	a.sink.DrawFittedText(
		x+lay.CardWidth/2,
		y+lay.NameBaseline,
		lay.CardWidth-2*lay.TextMargin,
		lay.NameFontSize,
		rec.Name,
	)

	if err := a.sink.DrawImageFile(
		imagePath,
		x+lay.BarcodeInset,
		y+lay.BarcodeTop,
		lay.CardWidth-2*lay.BarcodeInset,
		lay.BarcodeHeight,
	); err != nil {
		return err
	}

	a.sink.DrawFittedText(
		x+lay.CardWidth/2,
		y+lay.CardHeight-2,
		lay.CardWidth-2*lay.TextMargin,
		lay.NumberFontSize,
		rec.Number,
	)

	// Extra info goes into the bottom-right corner, as on the original
	// card face. Records without it get no corner label.
	if rec.ExtraInfo != "" {
		a.sink.DrawRightAlignedText(
			x+lay.CardWidth-lay.TextMargin,
			y+lay.CardHeight-lay.TextMargin,
			lay.ExtraFontSize,
			rec.ExtraInfo,
		)
	}

	return a.sink.Err()
}
