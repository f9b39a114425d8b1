// =============================================================================
// CSV to PDF Card Generator - PDF Writer
// =============================================================================
//
// This module is the document backend: it implements the assembler's
// DocumentSink contract on top of the fpdf library. It owns the page
// format, the font, and the serialization of the finished document.
//
// FONT HANDLING:
//   The font is registered at construction time, before any page content
//   exists, so a missing or corrupt font file fails the run before
//   anything is drawn. An empty font path selects the built-in Helvetica
//   core font, which needs no file access; core fonts are limited to the
//   cp1252 character set and non-representable characters degrade, so a
//   TrueType font should be configured for non-Latin names.
//
// OUTPUT:
//   The document is serialized with compression to a staging file next to
//   the target and renamed into place only on success.
//
// =============================================================================

package pdfwriter

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/pkg/utils"
)

// fontFamily is the registration name of a configured TrueType font.
const fontFamily = "cardfont"

// minFontSize is the floor for shrink-to-fit text. Below this the label
// is drawn clipped rather than unreadable.
const minFontSize = 4

var (
	// ErrFontLoad marks a font resource that could not be loaded.
	ErrFontLoad = errors.New("font could not be loaded")

	// ErrWrite marks a document that could not be persisted.
	ErrWrite = errors.New("document could not be written")
)

// =============================================================================
// WRITER
// =============================================================================

// Writer renders drawing primitives into an in-memory PDF document.
type Writer struct {
	pdf       *fpdf.Fpdf
	family    string
	translate func(string) string
}

// New creates a writer with one empty page of the configured format.
// The configured font is loaded and registered here; any font failure is
// reported before drawing can begin.
func New(cfg *config.Config) (*Writer, error) {
	pdf := fpdf.New("P", "mm", cfg.PageSize, "")
	pdf.SetCompression(true)

	// The assembler decides when a page is full; fpdf must not insert
	// page breaks on its own.
	pdf.SetAutoPageBreak(false, 0)

	w := &Writer{pdf: pdf}

	if cfg.FontPath != "" {
		if _, err := os.Stat(cfg.FontPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		pdf.AddUTF8Font(fontFamily, "", cfg.FontPath)
		if pdf.Err() {
			return nil, fmt.Errorf("%w: %v", ErrFontLoad, pdf.Error())
		}
		w.family = fontFamily
		w.translate = func(s string) string { return s }
	} else {
		w.family = "Helvetica"
		w.translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	return w, nil
}

// =============================================================================
// DOCUMENT SINK PRIMITIVES
// =============================================================================

// PageSize returns the page dimensions in millimetres.
func (w *Writer) PageSize() (width, height float64) {
	return w.pdf.GetPageSize()
}

// NextPage appends a new empty page and makes it current.
func (w *Writer) NextPage() {
	w.pdf.AddPage()
}

// PageCount returns the number of pages in the document so far.
func (w *Writer) PageCount() int {
	return w.pdf.PageCount()
}

// DrawFrame draws the card outline.
func (w *Writer) DrawFrame(x, y, width, height float64) {
	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.Rect(x, y, width, height, "D")
}

// DrawFittedText draws text centered on centerX with its baseline at
// baselineY. The font size starts at size and shrinks until the text fits
// into maxWidth, mirroring the fit_text behavior of the original
// generator.
func (w *Writer) DrawFittedText(centerX, baselineY, maxWidth, size float64, text string) {
	text = w.translate(text)

	for size > minFontSize {
		w.pdf.SetFont(w.family, "", size)
		if w.pdf.GetStringWidth(text) <= maxWidth {
			break
		}
		size--
	}
	w.pdf.SetFont(w.family, "", size)

	width := w.pdf.GetStringWidth(text)
	w.pdf.Text(centerX-width/2, baselineY, text)
}

// DrawRightAlignedText draws text with its right edge at rightX and its
// baseline at baselineY. No fitting is applied; the caller picks a size
// small enough for corner labels.
func (w *Writer) DrawRightAlignedText(rightX, baselineY, size float64, text string) {
	text = w.translate(text)
	w.pdf.SetFont(w.family, "", size)
	w.pdf.Text(rightX-w.pdf.GetStringWidth(text), baselineY, text)
}

// DrawImageFile draws a PNG file into the given box. The file is read
// during this call; the caller may delete it afterwards.
func (w *Writer) DrawImageFile(path string, x, y, width, height float64) error {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.ImageOptions(path, x, y, width, height, false, opts, 0, "")
	if w.pdf.Err() {
		return fmt.Errorf("failed to draw image %s: %w", path, w.pdf.Error())
	}
	return nil
}

// Err reports the sticky error state of the underlying document.
func (w *Writer) Err() error {
	if w.pdf.Err() {
		return w.pdf.Error()
	}
	return nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// WriteFile serializes the document to path. The document is written to a
// staging file first and renamed over the target only when serialization
// succeeded, so the target is never left half-written. The writer is
// closed by this call and cannot be drawn on afterwards.
func (w *Writer) WriteFile(path string) error {
	staging := utils.StagingPath(path)

	if err := w.pdf.OutputFileAndClose(staging); err != nil {
		os.Remove(staging)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(staging, path); err != nil {
		os.Remove(staging)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
