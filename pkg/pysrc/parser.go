// Package pysrc parses Python source files with tree-sitter and extracts
// the import references needed for bundling and dependency analysis.
package pysrc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexaandru/go-sitter-forest/python"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Sentinel errors for parser operations.
var (
	errNoRootNode = errors.New("pysrc: no root node")
	errPoolType   = errors.New("pysrc: pool returned unexpected type")
)

var (
	languageOnce sync.Once
	language     *sitter.Language
)

// pythonLanguage returns the shared tree-sitter Python language.
func pythonLanguage() *sitter.Language {
	languageOnce.Do(func() {
		language = sitter.NewLanguage(python.GetLanguage())
	})

	return language
}

// Parser parses Python source text. It is safe for concurrent use; the
// underlying tree-sitter parsers are pooled per goroutine.
type Parser struct {
	tsParserPool sync.Pool
}

// NewParser creates a Parser bound to the tree-sitter Python grammar.
func NewParser() *Parser {
	lang := pythonLanguage()

	return &Parser{
		tsParserPool: sync.Pool{
			New: func() any {
				tsParser := sitter.NewParser()
				tsParser.SetLanguage(lang)

				return tsParser
			},
		},
	}
}

// ExtractImports parses content and returns every import statement in the
// module, at any nesting depth, ordered ascending by (line, column).
func (p *Parser) ExtractImports(ctx context.Context, content []byte) ([]ImportReference, error) {
	tsParser, ok := p.tsParserPool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer p.tsParserPool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("pysrc: parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	var refs []ImportReference

	collectImports(root, content, &refs)

	sortReferences(refs)

	return refs, nil
}

// nodeText returns the source text covered by a tree-sitter node.
func nodeText(tsNode sitter.Node, source []byte) string {
	start := tsNode.StartByte()
	end := tsNode.EndByte()

	if int(end) <= len(source) {
		return string(source[start:end])
	}

	return ""
}
