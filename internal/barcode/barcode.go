// =============================================================================
// CSV to PDF Card Generator - Barcode Renderer
// =============================================================================
//
// This module turns a record number into a temporary EAN-13 PNG image.
// The pipeline per number is:
//
//   normalize (12 digits) -> append check digit -> encode EAN-13
//     -> scale to the configured raster size -> write PNG
//
// Normalization restores the original generator's behavior: numbers longer
// than twelve digits are truncated, shorter ones are right-padded with
// random digits. The random source is injectable so tests stay
// deterministic.
//
// Encoding errors abort the run; records are never skipped silently.
//
// =============================================================================

package barcode

import (
	"errors"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"time"

	boombuler "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/checksum"
)

// PayloadLength is the number of digits in the EAN-13 body, before the
// check digit.
const PayloadLength = 12

// ErrEncode is wrapped around every failure of the underlying barcode
// library.
var ErrEncode = errors.New("barcode encoding failed")

// =============================================================================
// RENDERER
// =============================================================================

// Renderer rasterizes numbers into EAN-13 PNG files.
type Renderer struct {
	pixelWidth  int
	pixelHeight int
	rng         *rand.Rand
}

// NewRenderer returns a renderer producing images of the given raster
// size. rng is the source for pad digits; nil selects a time-seeded one.
func NewRenderer(pixelWidth, pixelHeight int, rng *rand.Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Renderer{
		pixelWidth:  pixelWidth,
		pixelHeight: pixelHeight,
		rng:         rng,
	}
}

// Normalize brings a number to exactly PayloadLength digits: longer
// numbers are truncated, shorter ones right-padded with random digits.
// Non-digit input fails with checksum.ErrInvalidNumber before any
// padding.
func (r *Renderer) Normalize(number string) (string, error) {
	if _, err := checksum.Compute(number); err != nil {
		return "", err
	}
	if len(number) > PayloadLength {
		return number[:PayloadLength], nil
	}
	for len(number) < PayloadLength {
		number += string(rune('0' + r.rng.Intn(10)))
	}
	return number, nil
}

// Render encodes the number as an EAN-13 symbol and writes it as a PNG
// file to destPath. The encoded payload is the normalized number plus its
// check digit.
func (r *Renderer) Render(number, destPath string) error {
	payload, err := r.Normalize(number)
	if err != nil {
		return err
	}
	encoded, err := checksum.Append(payload)
	if err != nil {
		return err
	}

	symbol, err := ean.Encode(encoded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	scaled, err := boombuler.Scale(symbol, r.pixelWidth, r.pixelHeight)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create barcode image: %w", err)
	}
	if err := png.Encode(file, scaled); err != nil {
		file.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to write barcode image: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to write barcode image: %w", err)
	}
	return nil
}
