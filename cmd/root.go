// =============================================================================
// CSV to PDF Card Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cardgen)
//   ├── generateCmd (cardgen generate)
//   ├── validateCmd (cardgen validate)
//   └── versionCmd (cardgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "CSV to PDF Card Generator - Render printable barcode cards from record files",
	Long: `CSV to PDF Card Generator reads (name, number, extra-info) records from a
delimited text file or an XLSX workbook and renders one printable card per
record into a single PDF: a name label, a card outline, and an EAN-13
barcode encoding the checksum-augmented number.

Processing is strictly sequential and fail-fast: the first error aborts the
whole run and no partial document replaces the output file.

Example Usage:
  cardgen generate                     # Render cards using config.yaml
  cardgen generate --config ./my.yaml  # Use a custom configuration file
  cardgen validate                     # Check config and input without rendering`,

	// Without a subcommand there is nothing to do but print help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},

	// Set up logging before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
