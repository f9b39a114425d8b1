// =============================================================================
// CSV to PDF Card Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the loading and
// validation half of the pipeline without rendering anything. It is meant
// for checking a record file before committing to a print run.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/loader"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/validation"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and input file without rendering",
	Long: `The validate command loads the configuration and the record file, runs
record validation, and lists the cards that a generate run would render.
No barcode images or PDF output are produced.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cfgFile)
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads and validates the input and reports what would be
// rendered.
func runValidate(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	records, err := loader.LoadRecords(cfg.InputFile, loader.Settings{
		Delimiter: cfg.CSV.Delimiter,
	})
	if err != nil {
		return err
	}

	if err := validation.ValidateRecords(records); err != nil {
		return err
	}

	fmt.Printf("Input OK: %d card(s) would be rendered to %s\n", len(records), cfg.OutputFile)
	for _, rec := range records {
		fmt.Printf("  - %s: %s\n", rec.Name, rec.Number)
	}
	return nil
}
