// Package classify implements the file-classification predicates used by
// the verification pipeline to sort Python sources into libraries and
// runnable checks.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// VerificationMarker in a filename designates a runnable check.
const VerificationMarker = ".test.py"

// privatePrefix excludes a file from the library set.
const privatePrefix = '_'

// sourceExtension is the subject language's file extension.
const sourceExtension = ".py"

// IsVerificationFile reports whether path names a runnable check.
func IsVerificationFile(path string) bool {
	return strings.Contains(filepath.Base(path), VerificationMarker)
}

// IsLibraryFile reports whether path names a library source: not private,
// not a verification file, and carrying the Python extension.
func IsLibraryFile(path string) bool {
	name := filepath.Base(path)
	if name == "" || name[0] == privatePrefix {
		return false
	}

	if IsVerificationFile(name) {
		return false
	}

	return strings.Contains(name, sourceExtension)
}

// Language returns the detected language of a file, for display.
func Language(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}
