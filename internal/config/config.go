// =============================================================================
// CSV to PDF Card Generator - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. Every
// value that used to be a hardcoded constant in the first version of the
// generator (input path, output path, font, page geometry, card layout) is
// externalized here; unset fields fall back to those original values.
//
// CONFIGURATION FILE:
//   A single config.yaml. All settings are optional.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the file with the card records. A .xlsx extension
	// selects the XLSX loader; anything else is read as delimited text.
	// Default: "./data/name and numbers.csv"
	InputFile string `yaml:"input_file"`

	// OutputFile is the path of the generated PDF.
	// Default: "cards.pdf"
	OutputFile string `yaml:"output_file"`

	// FontPath is a TrueType font file used for all card text. An empty
	// value selects the built-in Helvetica core font, which needs no
	// file access. A non-empty path that cannot be loaded aborts the run
	// before any drawing happens.
	// Default: "" (built-in font)
	FontPath string `yaml:"font_path"`

	// TempDir is the directory under which the per-run temporary
	// directory for barcode images is created.
	// Default: "" (the system temp directory)
	TempDir string `yaml:"temp_dir"`

	// =========================================================================
	// INPUT PARSING SETTINGS
	// =========================================================================

	// CSV contains settings for parsing delimited text input.
	CSV CSVSettings `yaml:"csv_settings"`

	// =========================================================================
	// PAGE AND CARD LAYOUT
	// =========================================================================

	// PageSize is the output page format.
	// Valid values: "A3", "A4", "A5", "Letter", "Legal".
	// Default: "A4"
	PageSize string `yaml:"page_size"`

	// Layout contains the card geometry. All lengths are millimetres.
	Layout Layout `yaml:"layout"`

	// Barcode contains the raster settings for the barcode images.
	Barcode BarcodeSettings `yaml:"barcode"`
}

// CSVSettings contains settings for parsing delimited text files.
type CSVSettings struct {
	// Delimiter is the character separating fields.
	// Common values: "," (comma), ";" (semicolon), "|" (pipe), "tab"
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// Layout describes where the card elements are drawn. All lengths are
// millimetres; the origin is the top-left corner of the page, and card
// element offsets are relative to the top-left corner of the card.
//
// A zero value is treated as unset and falls back to the default, so no
// layout length can be configured to exactly 0. Layouts that need a zero
// offset must use a small positive value instead.
type Layout struct {
	// CardWidth and CardHeight are the card dimensions.
	// Defaults: 90 x 50 (standard business card on a print sheet).
	CardWidth  float64 `yaml:"card_width"`
	CardHeight float64 `yaml:"card_height"`

	// ColumnX lists the left edge of each card column on the page.
	// Default: [15, 106] (two cards per row).
	ColumnX []float64 `yaml:"column_x"`

	// RowStartY is the top edge of the first card row on a page.
	// Default: 7
	RowStartY float64 `yaml:"row_start_y"`

	// RowStep is the vertical distance between card rows.
	// Default: 52 (card height plus a cutting gap)
	RowStep float64 `yaml:"row_step"`

	// BottomMargin is the space kept free at the bottom of the page;
	// a row that would enter it moves to a new page.
	// Default: 5
	BottomMargin float64 `yaml:"bottom_margin"`

	// TextMargin is the horizontal space kept free of text at the card
	// edges. Default: 5
	TextMargin float64 `yaml:"text_margin"`

	// NameBaseline is the baseline of the name label, measured from the
	// card top. Default: 10
	NameBaseline float64 `yaml:"name_baseline"`

	// NameFontSize is the maximum font size (points) for the name label.
	// The size shrinks until the name fits the card width.
	// Default: 24
	NameFontSize float64 `yaml:"name_font_size"`

	// NumberFontSize is the font size (points) of the number caption
	// under the barcode. Default: 8
	NumberFontSize float64 `yaml:"number_font_size"`

	// ExtraFontSize is the font size (points) of the extra-info label in
	// the bottom-right corner of the card. Default: 8
	ExtraFontSize float64 `yaml:"extra_font_size"`

	// BarcodeInset is the horizontal inset of the barcode image from the
	// card edges. Default: 10
	BarcodeInset float64 `yaml:"barcode_inset"`

	// BarcodeTop is the top edge of the barcode image, measured from the
	// card top. Default: 14
	BarcodeTop float64 `yaml:"barcode_top"`

	// BarcodeHeight is the drawn height of the barcode image.
	// Default: 28
	BarcodeHeight float64 `yaml:"barcode_height"`
}

// BarcodeSettings contains the raster resolution of the temporary barcode
// images. The drawn size on the card comes from Layout.
type BarcodeSettings struct {
	// PixelWidth is the raster width. EAN-13 symbols are 95 modules
	// wide, so this must be at least 95.
	// Default: 380 (4 pixels per module)
	PixelWidth int `yaml:"pixel_width"`

	// PixelHeight is the raster height.
	// Default: 120
	PixelHeight int `yaml:"pixel_height"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present:
// all fields at their default values.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
// The defaults reproduce the constants of the original generator.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "./data/name and numbers.csv"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "cards.pdf"
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.PageSize == "" {
		cfg.PageSize = "A4"
	}

	lay := &cfg.Layout
	if lay.CardWidth == 0 {
		lay.CardWidth = 90
	}
	if lay.CardHeight == 0 {
		lay.CardHeight = 50
	}
	if len(lay.ColumnX) == 0 {
		lay.ColumnX = []float64{15, 106}
	}
	if lay.RowStartY == 0 {
		lay.RowStartY = 7
	}
	if lay.RowStep == 0 {
		lay.RowStep = 52
	}
	if lay.BottomMargin == 0 {
		lay.BottomMargin = 5
	}
	if lay.TextMargin == 0 {
		lay.TextMargin = 5
	}
	if lay.NameBaseline == 0 {
		lay.NameBaseline = 10
	}
	if lay.NameFontSize == 0 {
		lay.NameFontSize = 24
	}
	if lay.NumberFontSize == 0 {
		lay.NumberFontSize = 8
	}
	if lay.ExtraFontSize == 0 {
		lay.ExtraFontSize = 8
	}
	if lay.BarcodeInset == 0 {
		lay.BarcodeInset = 10
	}
	if lay.BarcodeTop == 0 {
		lay.BarcodeTop = 14
	}
	if lay.BarcodeHeight == 0 {
		lay.BarcodeHeight = 28
	}

	if cfg.Barcode.PixelWidth == 0 {
		cfg.Barcode.PixelWidth = 380
	}
	if cfg.Barcode.PixelHeight == 0 {
		cfg.Barcode.PixelHeight = 120
	}
}

// validate rejects configurations the generator cannot work with.
func validate(cfg *Config) error {
	switch cfg.PageSize {
	case "A3", "A4", "A5", "Letter", "Legal":
	default:
		return fmt.Errorf("unsupported page size %q", cfg.PageSize)
	}

	if cfg.Layout.CardWidth <= 0 || cfg.Layout.CardHeight <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	if cfg.Layout.RowStep <= 0 {
		return fmt.Errorf("row_step must be positive")
	}
	if len(cfg.Layout.ColumnX) == 0 {
		return fmt.Errorf("layout needs at least one card column")
	}

	// 95 modules is the fixed width of an EAN-13 symbol.
	if cfg.Barcode.PixelWidth < 95 {
		return fmt.Errorf("barcode pixel_width must be at least 95, got %d", cfg.Barcode.PixelWidth)
	}
	if cfg.Barcode.PixelHeight <= 0 {
		return fmt.Errorf("barcode pixel_height must be positive")
	}

	return nil
}
