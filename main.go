// =============================================================================
// CSV to PDF Card Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the card generator CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd
// package.
//
// USAGE:
//   cardgen generate   - Render the card PDF from the configured input file
//   cardgen validate   - Check configuration and input without rendering
//   cardgen version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core business logic (not for external import)
//   - pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-PDF-conversion/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
