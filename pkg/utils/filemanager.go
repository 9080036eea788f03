// =============================================================================
// CSV to LaTeX Converter - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used by the converter:
//   - Writing the generated markup (create, truncate, write, close)
//   - Directory management for the output path
//
// Every failure from WriteTextFile is a *types.WriteError so callers can tell
// output problems apart from input problems.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will contain path, if missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteTextFile writes text to path as UTF-8, replacing any existing content.
//
// PARAMETERS:
//   - text: The content to write. Go strings are written byte-for-byte, so
//           UTF-8 input stays UTF-8.
//   - path: The output path. Missing parent directories are created.
//
// RETURNS:
//   - The number of bytes written.
//   - *types.WriteError if the directory, file, write, flush or close fails.
//
// The file is closed on every return path, and a close error is reported
// when nothing else failed first.
func WriteTextFile(text, path string) (n int, err error) {
	if err := EnsureParentDir(path); err != nil {
		return 0, &types.WriteError{Path: path, Err: err}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, &types.WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &types.WriteError{Path: path, Err: closeErr}
		}
	}()

	writer := bufio.NewWriter(file)
	if n, err = writer.WriteString(text); err != nil {
		return n, &types.WriteError{Path: path, Err: err}
	}
	if err = writer.Flush(); err != nil {
		return n, &types.WriteError{Path: path, Err: err}
	}

	return n, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
