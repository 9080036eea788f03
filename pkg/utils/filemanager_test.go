package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

func TestWriteTextFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotated_bib", "nested", "table_output.tex")

	n, err := WriteTextFile("héllo\n", path)
	require.NoError(t, err)

	assert.Equal(t, len("héllo\n"), n)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "héllo\n", string(data))
}

func TestWriteTextFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tex")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0644))

	_, err := WriteTextFile("short\n", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
}

func TestWriteTextFile_Errors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	tests := []struct {
		name string
		path string
	}{
		{name: "path is a directory", path: dir},
		{name: "parent is a file", path: filepath.Join(blocker, "out.tex")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WriteTextFile("data", tt.path)

			var writeErr *types.WriteError
			require.True(t, errors.As(err, &writeErr), "expected WriteError, got %v", err)
			assert.Equal(t, tt.path, writeErr.Path)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
}
