package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitLines(nil))
	assert.Equal(t, []string{"a", "b"}, splitLines([]byte("a\nb\n")))
	assert.Equal(t, []string{"a", "b"}, splitLines([]byte("a\nb")))
	assert.Equal(t, []string{""}, splitLines([]byte("\n")))
}

func TestTextLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, textLines(""))
	assert.Equal(t, []string{"a", "b"}, textLines("a\nb\n"))
}

func TestJoinLines_RoundTrip(t *testing.T) {
	t.Parallel()

	assert.Empty(t, joinLines(nil))

	for _, raw := range []string{"a\nb\n", "\n", "x = 1\n\n\n"} {
		assert.Equal(t, raw, joinLines(splitLines([]byte(raw))))
	}
}

func TestIndentLines(t *testing.T) {
	t.Parallel()

	lines := []string{"x = 1", "", "y = 2"}

	assert.Equal(t, lines, indentLines(lines, 0))
	assert.Equal(t, []string{"    x = 1", "", "    y = 2"}, indentLines(lines, 4))
}

func TestStatementLines(t *testing.T) {
	t.Parallel()

	src := []string{"import a", "x = 1", "y = 2"}

	assert.Equal(t, []string{"import a"}, statementLines(src, pysrc.ImportReference{StartLine: 0, EndLine: 0}))
	assert.Equal(t, []string{"x = 1", "y = 2"}, statementLines(src, pysrc.ImportReference{StartLine: 1, EndLine: 2}))
	assert.Nil(t, statementLines(src, pysrc.ImportReference{StartLine: 5, EndLine: 6}))
	assert.Equal(t, []string{"y = 2"}, statementLines(src, pysrc.ImportReference{StartLine: 2, EndLine: 9}))
}
