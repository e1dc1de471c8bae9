package classify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVerificationFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsVerificationFile("example.test.py"))
	assert.True(t, IsVerificationFile(filepath.Join("sub", "dir", "graph.test.py")))
	assert.False(t, IsVerificationFile("example.py"))
	assert.False(t, IsVerificationFile("test_example.py"))
	assert.False(t, IsVerificationFile("example.test.cpp"))
}

func TestIsLibraryFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsLibraryFile("graph.py"))
	assert.True(t, IsLibraryFile(filepath.Join("lib", "union_find.py")))
	assert.False(t, IsLibraryFile("_private.py"))
	assert.False(t, IsLibraryFile("__init__.py"))
	assert.False(t, IsLibraryFile("graph.test.py"))
	assert.False(t, IsLibraryFile("graph.cpp"))
	assert.False(t, IsLibraryFile(""))
}

func TestIsLibraryFile_DirectoryPrefixIgnored(t *testing.T) {
	t.Parallel()

	// Only the filename decides; a private-looking directory does not.
	assert.True(t, IsLibraryFile(filepath.Join("_vendor", "graph.py")))
	assert.False(t, IsLibraryFile(filepath.Join("lib", "_private.py")))
}

func TestLanguage_Python(t *testing.T) {
	t.Parallel()

	lang := Language("main.py", []byte("import os\nprint(os.sep)\n"))

	assert.Equal(t, "Python", lang)
}
