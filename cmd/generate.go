// =============================================================================
// CSV to PDF Card Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full rendering
// pipeline.
//
// PIPELINE:
//   1. Load the configuration (defaults when no config file exists)
//   2. Create the output directory and the per-run temp directory
//   3. Build the PDF writer - the font is loaded here, before any drawing
//   4. Load the records from the input file
//   5. Validate all records (fail-fast, nothing is drawn for bad input)
//   6. Render all cards, strictly sequentially
//   7. Serialize the document atomically to the output path
//
// Any failure aborts the run with a non-zero exit status. There are no
// retries and no skipped records.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/assembler"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/barcode"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/loader"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/pdfwriter"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/validation"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/pkg/utils"
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the card PDF from the configured input file",
	Long: `The generate command reads the record file named in the configuration,
validates every record, and renders one card per record into a single PDF.

The output file is written atomically: on failure the previous document at
the output path, if any, is left untouched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cfgFile)
	},
}

// init registers the generate command with the root command.
func init() {
	rootCmd.AddCommand(generateCmd)
}

// =============================================================================
// PIPELINE
// =============================================================================

// loadConfig loads the configuration file, falling back to the built-in
// defaults when no file exists at the given path.
func loadConfig(path string) (*config.Config, error) {
	if !utils.FileExists(path) {
		slog.Debug("no config file found, using defaults", "path", path)
		return config.Default(), nil
	}
	return config.Load(path)
}

// runGenerate executes the rendering pipeline.
func runGenerate(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.OutputFile, cfg.TempDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	// The writer loads the font; a bad font aborts before any drawing.
	sink, err := pdfwriter.New(cfg)
	if err != nil {
		return err
	}

	records, err := loader.LoadRecords(cfg.InputFile, loader.Settings{
		Delimiter: cfg.CSV.Delimiter,
	})
	if err != nil {
		return err
	}
	slog.Info("records loaded", "file", cfg.InputFile, "count", len(records))

	if err := validation.ValidateRecords(records); err != nil {
		return err
	}

	tempDir, err := fm.CreateTempDir()
	if err != nil {
		return err
	}
	defer fm.Cleanup()

	encoder := barcode.NewRenderer(cfg.Barcode.PixelWidth, cfg.Barcode.PixelHeight, nil)
	asm := assembler.New(cfg, encoder, sink, tempDir, slog.Default())

	results, err := asm.Run(records)
	if err != nil {
		return err
	}

	if err := sink.WriteFile(cfg.OutputFile); err != nil {
		return err
	}

	slog.Info("document written",
		"file", cfg.OutputFile,
		"cards", len(results),
		"pages", sink.PageCount(),
	)
	fmt.Printf("Rendered %d card(s) to %s\n", len(results), cfg.OutputFile)

	return nil
}
