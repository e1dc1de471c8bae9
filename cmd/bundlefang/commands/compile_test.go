package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/bundlefang/pkg/launcher"
)

func TestCompileCommand_WritesScript(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	tempdir := t.TempDir()
	target := filepath.Join(base, "main.py")
	writeFile(t, target, "print(1)\n")

	out, err := execute(t, NewCompileCommand(), "-t", tempdir, target)
	require.NoError(t, err)

	scriptPath := filepath.Join(tempdir, launcher.ScriptName)
	assert.Contains(t, out, scriptPath)

	script, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(script), "PYTHONPATH")
}

func TestCompileCommand_PrintsExecuteCommand(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	tempdir := t.TempDir()
	target := filepath.Join(base, "main.py")
	writeFile(t, target, "print(1)\n")

	out, err := execute(t, NewCompileCommand(), "-t", tempdir, target)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, launcher.DefaultPython+" "+filepath.Join(tempdir, launcher.ScriptName), lines[1])
}
