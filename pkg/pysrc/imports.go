package pysrc

import (
	"sort"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Tree-sitter Python node kinds involved in import extraction.
const (
	nodeImport       = "import_statement"
	nodeImportFrom   = "import_from_statement"
	nodeImportFuture = "future_import_statement"
	nodeDottedName   = "dotted_name"
	nodeAliased      = "aliased_import"
	nodeWildcard     = "wildcard_import"
	nodeRelative     = "relative_import"
	nodeImportPrefix = "import_prefix"
)

// futureModule is the implicit module of a future_import_statement.
const futureModule = "__future__"

// WildcardName is the bound-name marker recorded for `from M import *`.
const WildcardName = "*"

// ImportReference is a single import statement's syntactic occurrence.
// Lines and columns are 0-based; Col is the statement's indentation depth,
// so Col == 0 marks a true top-level import.
type ImportReference struct {
	// Module is the primary dotted specifier: the source module of a
	// from-import, or the first listed module of a plain import.
	Module string

	// Names holds all listed dotted module names for a plain import, or
	// the bound names of a from-import (WildcardName for `import *`).
	Names []string

	// Text is the verbatim statement text.
	Text string

	StartLine int
	EndLine   int
	Col       int

	// RelativeLevel is the number of leading dots of a relative
	// from-import; 0 means absolute.
	RelativeLevel int

	From     bool
	Wildcard bool
}

// TopLevel reports whether the statement is unconditionally executed at
// file scope.
func (r ImportReference) TopLevel() bool {
	return r.Col == 0
}

// collectImports walks the tree appending every import statement found.
// Import statements do not nest inside other import statements, so the
// walk stops descending once one is recorded.
func collectImports(tsNode sitter.Node, source []byte, out *[]ImportReference) {
	switch tsNode.Type() {
	case nodeImport:
		*out = append(*out, newPlainReference(tsNode, source))

		return
	case nodeImportFrom:
		*out = append(*out, newFromReference(tsNode, source))

		return
	case nodeImportFuture:
		*out = append(*out, newFutureReference(tsNode, source))

		return
	}

	for idx := range tsNode.NamedChildCount() {
		collectImports(tsNode.NamedChild(idx), source, out)
	}
}

// newPlainReference builds the reference for `import a.b, c as d`.
func newPlainReference(tsNode sitter.Node, source []byte) ImportReference {
	ref := baseReference(tsNode, source)

	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)

		name := importedName(child, source)
		if name != "" {
			ref.Names = append(ref.Names, name)
		}
	}

	if len(ref.Names) > 0 {
		ref.Module = ref.Names[0]
	}

	return ref
}

// newFromReference builds the reference for `from M import x, y as z` and
// its wildcard and relative forms.
func newFromReference(tsNode sitter.Node, source []byte) ImportReference {
	ref := baseReference(tsNode, source)
	ref.From = true

	moduleNode := tsNode.ChildByFieldName("module_name")
	if !moduleNode.IsNull() {
		if moduleNode.Type() == nodeRelative {
			ref.RelativeLevel, ref.Module = relativeModule(moduleNode, source)
		} else {
			ref.Module = nodeText(moduleNode, source)
		}
	}

	hasModule := !moduleNode.IsNull()

	var moduleStart uint
	if hasModule {
		moduleStart = moduleNode.StartByte()
	}

	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)
		if hasModule && child.StartByte() == moduleStart {
			continue
		}

		if child.Type() == nodeWildcard {
			ref.Wildcard = true
			ref.Names = append(ref.Names, WildcardName)

			continue
		}

		name := importedName(child, source)
		if name != "" {
			ref.Names = append(ref.Names, name)
		}
	}

	return ref
}

// newFutureReference builds the reference for `from __future__ import x`.
func newFutureReference(tsNode sitter.Node, source []byte) ImportReference {
	ref := baseReference(tsNode, source)
	ref.From = true
	ref.Module = futureModule

	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)

		name := importedName(child, source)
		if name != "" {
			ref.Names = append(ref.Names, name)
		}
	}

	return ref
}

// baseReference fills the position fields shared by all statement forms.
func baseReference(tsNode sitter.Node, source []byte) ImportReference {
	start := tsNode.StartPoint()
	end := tsNode.EndPoint()

	return ImportReference{
		Text:      nodeText(tsNode, source),
		StartLine: int(start.Row),
		EndLine:   int(end.Row),
		Col:       int(start.Column),
	}
}

// importedName extracts the dotted module or bound name from a dotted_name
// or aliased_import child. Aliases bind under the alias at runtime, but
// dedup tracks the imported name itself.
func importedName(child sitter.Node, source []byte) string {
	switch child.Type() {
	case nodeDottedName:
		return nodeText(child, source)
	case nodeAliased:
		nameNode := child.ChildByFieldName("name")
		if !nameNode.IsNull() {
			return nodeText(nameNode, source)
		}
	}

	return ""
}

// relativeModule decodes a relative_import node into its dot level and the
// optional trailing dotted module name.
func relativeModule(tsNode sitter.Node, source []byte) (int, string) {
	level := 0
	module := ""

	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)

		switch child.Type() {
		case nodeImportPrefix:
			level = strings.Count(nodeText(child, source), ".")
		case nodeDottedName:
			module = nodeText(child, source)
		}
	}

	if level == 0 {
		// The prefix is all the relative_import has before any name.
		level = strings.Count(nodeText(tsNode, source), ".") - strings.Count(module, ".")
	}

	return level, module
}

// sortReferences orders statements ascending by (line, column).
func sortReferences(refs []ImportReference) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].StartLine != refs[j].StartLine {
			return refs[i].StartLine < refs[j].StartLine
		}

		return refs[i].Col < refs[j].Col
	})
}
