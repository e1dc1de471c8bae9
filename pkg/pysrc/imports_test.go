package pysrc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, source string) []ImportReference {
	t.Helper()

	refs, err := NewParser().ExtractImports(context.Background(), []byte(source))
	require.NoError(t, err)

	return refs
}

func TestExtractImports_NoImports(t *testing.T) {
	t.Parallel()

	refs := extract(t, "value = 1\nprint(value)\n")

	assert.Empty(t, refs)
}

func TestExtractImports_PlainImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "import os\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "os", refs[0].Module)
	assert.Equal(t, []string{"os"}, refs[0].Names)
	assert.False(t, refs[0].From)
	assert.Equal(t, 0, refs[0].StartLine)
	assert.Equal(t, 0, refs[0].Col)
	assert.True(t, refs[0].TopLevel())
}

func TestExtractImports_DottedModule(t *testing.T) {
	t.Parallel()

	refs := extract(t, "import a.b.c\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "a.b.c", refs[0].Module)
	assert.Equal(t, []string{"a.b.c"}, refs[0].Names)
}

func TestExtractImports_MultipleNames(t *testing.T) {
	t.Parallel()

	refs := extract(t, "import a, b\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "a", refs[0].Module)
	assert.Equal(t, []string{"a", "b"}, refs[0].Names)
}

func TestExtractImports_AliasedImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "import numpy as np\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "numpy", refs[0].Module)
	assert.Equal(t, []string{"numpy"}, refs[0].Names)
}

func TestExtractImports_FromImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from collections import deque, Counter\n")

	require.Len(t, refs, 1)
	assert.True(t, refs[0].From)
	assert.Equal(t, "collections", refs[0].Module)
	assert.Equal(t, []string{"deque", "Counter"}, refs[0].Names)
	assert.False(t, refs[0].Wildcard)
}

func TestExtractImports_FromImportAlias(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from os import path as p\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "os", refs[0].Module)
	assert.Equal(t, []string{"path"}, refs[0].Names)
}

func TestExtractImports_WildcardImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from math import *\n")

	require.Len(t, refs, 1)
	assert.True(t, refs[0].Wildcard)
	assert.Equal(t, []string{WildcardName}, refs[0].Names)
}

func TestExtractImports_RelativeImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from ..pkg import helper\n")

	require.Len(t, refs, 1)
	assert.Equal(t, 2, refs[0].RelativeLevel)
	assert.Equal(t, "pkg", refs[0].Module)
}

func TestExtractImports_BareRelativeImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from . import sibling\n")

	require.Len(t, refs, 1)
	assert.Equal(t, 1, refs[0].RelativeLevel)
	assert.Empty(t, refs[0].Module)
	assert.Equal(t, []string{"sibling"}, refs[0].Names)
}

func TestExtractImports_FutureImport(t *testing.T) {
	t.Parallel()

	refs := extract(t, "from __future__ import annotations\n")

	require.Len(t, refs, 1)
	assert.True(t, refs[0].From)
	assert.Equal(t, "__future__", refs[0].Module)
	assert.Equal(t, []string{"annotations"}, refs[0].Names)
}

func TestExtractImports_NestedImport(t *testing.T) {
	t.Parallel()

	source := "def f():\n    import json\n    return json\n"
	refs := extract(t, source)

	require.Len(t, refs, 1)
	assert.Equal(t, "json", refs[0].Module)
	assert.Equal(t, 1, refs[0].StartLine)
	assert.Equal(t, 4, refs[0].Col)
	assert.False(t, refs[0].TopLevel())
}

func TestExtractImports_SourceOrder(t *testing.T) {
	t.Parallel()

	source := "import z\n\ndef f():\n    import a\n\nimport m\n"
	refs := extract(t, source)

	require.Len(t, refs, 3)
	assert.Equal(t, "z", refs[0].Module)
	assert.Equal(t, "a", refs[1].Module)
	assert.Equal(t, "m", refs[2].Module)
}

func TestExtractImports_MultiLineFromImport(t *testing.T) {
	t.Parallel()

	source := "from typing import (\n    Any,\n    Dict,\n)\nx = 1\n"
	refs := extract(t, source)

	require.Len(t, refs, 1)
	assert.Equal(t, "typing", refs[0].Module)
	assert.Equal(t, []string{"Any", "Dict"}, refs[0].Names)
	assert.Equal(t, 0, refs[0].StartLine)
	assert.Equal(t, 3, refs[0].EndLine)
}

func TestExtractImports_StatementText(t *testing.T) {
	t.Parallel()

	refs := extract(t, "import os\n")

	require.Len(t, refs, 1)
	assert.Equal(t, "import os", refs[0].Text)
}
