package bundler

import (
	"strings"

	"github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"
)

// splitLines breaks raw source into lines without the trailing-newline
// artifact: "a\nb\n" and "a\nb" both become ["a", "b"].
func splitLines(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	return strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
}

// textLines is splitLines for already-processed text.
func textLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// joinLines renders lines back to text with a trailing newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// indentLines prefixes every non-empty line with col spaces, preserving
// the indentation depth of the statement being replaced.
func indentLines(lines []string, col int) []string {
	if col == 0 || len(lines) == 0 {
		return lines
	}

	prefix := strings.Repeat(" ", col)
	out := make([]string, len(lines))

	for i, line := range lines {
		if line == "" {
			out[i] = line

			continue
		}

		out[i] = prefix + line
	}

	return out
}

// statementLines returns the verbatim source lines an import statement
// occupies.
func statementLines(src []string, ref pysrc.ImportReference) []string {
	start := ref.StartLine
	end := ref.EndLine + 1

	if start >= len(src) {
		return nil
	}

	if end > len(src) {
		end = len(src)
	}

	out := make([]string, end-start)
	copy(out, src[start:end])

	return out
}
