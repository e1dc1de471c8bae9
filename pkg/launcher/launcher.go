// Package launcher generates the helper script that runs a bundled or
// plain Python target with the module search path set up portably.
//
// The generated script prepends the base directory to PYTHONPATH
// (preserving any pre-existing value) and replaces the current process
// image with the interpreter via os.execve, so no intermediate parent
// process is retained.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPython is the interpreter used when none is configured.
const DefaultPython = "python3"

// ScriptName is the launcher file written into the temp directory.
const ScriptName = "compiled.py"

// scriptFileMode makes the launcher readable and executable.
const scriptFileMode = 0o755

// Environment describes one interpreter a target can run under.
type Environment struct {
	Python string
}

// ListEnvironments returns the available execution environments.
// TODO: add a PyPy environment once the verification pipeline can select
// interpreters per target.
func ListEnvironments() []Environment {
	return []Environment{{Python: DefaultPython}}
}

// Compile writes the launcher script for path into tempdir and returns
// the script path. basedir is prepended to PYTHONPATH at run time.
func (e Environment) Compile(path, basedir, tempdir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve target path %s: %w", path, err)
	}

	absBase, err := filepath.Abs(basedir)
	if err != nil {
		return "", fmt.Errorf("resolve base directory %s: %w", basedir, err)
	}

	script := launcherScript(absPath, absBase)
	scriptPath := filepath.Join(tempdir, ScriptName)

	if writeErr := os.WriteFile(scriptPath, []byte(script), scriptFileMode); writeErr != nil {
		return "", fmt.Errorf("write launcher script: %w", writeErr)
	}

	return scriptPath, nil
}

// ExecuteCommand returns the argv that runs the compiled launcher.
func (e Environment) ExecuteCommand(tempdir string) []string {
	python := e.Python
	if python == "" {
		python = DefaultPython
	}

	return []string{python, filepath.Join(tempdir, ScriptName)}
}

// launcherScript renders the helper. Quoting with strconv.Quote produces
// literals valid in both Go and Python for file paths.
func launcherScript(path, basedir string) string {
	return fmt.Sprintf(`#!/usr/bin/env python3
"""Helper script to run the target Python code.

Sets PYTHONPATH portably; env(1) and shell quoting are not.
"""

import os
import sys

path = %s
basedir = %s

env = dict(os.environ)
if "PYTHONPATH" in env:
    env["PYTHONPATH"] = basedir + os.pathsep + env["PYTHONPATH"]
else:
    env["PYTHONPATH"] = basedir

os.execve(sys.executable, [sys.executable, path], env)
`, strconv.Quote(path), strconv.Quote(basedir))
}
