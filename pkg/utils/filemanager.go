// =============================================================================
// CSV to PDF Card Generator - File Manager
// =============================================================================
//
// This module owns the filesystem bookkeeping around a run:
//   - Creating the output directory if it does not exist
//   - Creating and removing the unique per-run temporary directory that
//     holds the intermediate barcode images
//   - Staging paths for the atomic output write (the PDF is serialized to
//     a staging file and renamed over the target only on success, so a
//     failed run never leaves a partial document at the output path)
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles directory bookkeeping for one run.
type FileManager struct {
	// OutputDir is the directory that will hold the generated PDF.
	OutputDir string

	// TempRoot is the directory under which the per-run temp directory is
	// created. Empty selects the system temp directory.
	TempRoot string

	tempDir string
}

// NewFileManager creates a file manager for the given output file path.
func NewFileManager(outputFile, tempRoot string) *FileManager {
	return &FileManager{
		OutputDir: filepath.Dir(outputFile),
		TempRoot:  tempRoot,
	}
}

// EnsureDirectories creates the output directory if needed.
func (fm *FileManager) EnsureDirectories() error {
	if fm.OutputDir == "" || fm.OutputDir == "." {
		return nil
	}
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// CreateTempDir creates the unique per-run temporary directory and
// returns its path. The uuid in the name keeps concurrent runs of the
// program (not of records; record processing is sequential) from sharing
// barcode image paths.
func (fm *FileManager) CreateTempDir() (string, error) {
	root := fm.TempRoot
	if root == "" {
		root = os.TempDir()
	}
	dir := filepath.Join(root, "cardgen-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	fm.tempDir = dir
	return dir, nil
}

// Cleanup removes the per-run temporary directory. Best effort: by the
// time this runs every barcode image has already been deleted record by
// record, so only the empty directory itself is left.
func (fm *FileManager) Cleanup() {
	if fm.tempDir == "" {
		return
	}
	os.RemoveAll(fm.tempDir)
	fm.tempDir = ""
}

// =============================================================================
// HELPERS
// =============================================================================

// StagingPath returns the path the output document is serialized to
// before being renamed over the target.
func StagingPath(path string) string {
	return path + ".tmp~" + uuid.NewString()[:8]
}

// FileExists reports whether the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
