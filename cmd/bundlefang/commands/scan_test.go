package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCommand_ClassifiesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "graph.py"), "g = 1\n")
	writeFile(t, filepath.Join(dir, "graph.test.py"), "import graph\n")
	writeFile(t, filepath.Join(dir, "_private.py"), "p = 1\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "notes\n")

	out, err := execute(t, NewScanCommand(), dir)
	require.NoError(t, err)

	assert.Contains(t, out, "library")
	assert.Contains(t, out, "graph.py")
	assert.Contains(t, out, "verification")
	assert.Contains(t, out, "graph.test.py")
	assert.NotContains(t, out, "_private.py")
	assert.NotContains(t, out, "notes.txt")
}

func TestScanCommand_LanguageColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "graph.py"), "import os\n")

	out, err := execute(t, NewScanCommand(), "-l", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Python")
}

func TestScanCommand_EmptyDirectory(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewScanCommand(), t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, out)
}
