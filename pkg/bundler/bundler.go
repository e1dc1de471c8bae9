// Package bundler merges a Python entry file and its transitive
// locally-resolvable imports into a single self-contained source blob.
//
// Import statements resolved against the search roots are replaced in
// place by the imported file's processed body, re-indented to the
// statement's column. Unresolved (external/standard) imports pass through
// verbatim, with repeated top-level occurrences elided.
package bundler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"
	"github.com/Sumatoshi-tech/bundlefang/pkg/resolver"
)

const tracerName = "bundlefang/bundler"

// Bundler performs recursive import inlining. It is stateless between
// Bundle calls: all dedup state lives in a per-call session.
type Bundler struct {
	parser   *pysrc.Parser
	resolver *resolver.Resolver
}

// New creates a Bundler over the given search roots (priority order).
func New(searchRoots []string) (*Bundler, error) {
	res, err := resolver.New(searchRoots)
	if err != nil {
		return nil, err
	}

	return &Bundler{
		parser:   pysrc.NewParser(),
		resolver: res,
	}, nil
}

// Bundle returns the merged UTF-8 source for entryPath. A fatal
// resolution failure aborts the whole operation with no partial output.
func (b *Bundler) Bundle(ctx context.Context, entryPath string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "bundler.Bundle",
		trace.WithAttributes(attribute.String("bundle.entry", entryPath)))
	defer span.End()

	entry, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, fmt.Errorf("resolve entry path %s: %w", entryPath, err)
	}

	sess := newSession()

	text, err := b.processFile(ctx, sess, entry)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	slog.Debug("bundled entry file", "entry", entry, "files", len(sess.processed))

	return []byte(text), nil
}

// processFile returns the processed text of path: its source with every
// import statement resolved to an inline body, a verbatim pass-through,
// or nothing. The result is memoized; marking the file before recursing
// breaks import cycles by inlining an in-progress file as empty text.
func (b *Bundler) processFile(ctx context.Context, sess *session, path string) (string, error) {
	if sess.processed[path] {
		return sess.processedText[path], nil
	}

	sess.processed[path] = true

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	refs, err := b.parser.ExtractImports(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	src := splitLines(raw)
	out := make([]string, 0, len(src))
	next := 0

	for _, ref := range refs {
		// One statement per line range; a second statement sharing an
		// already-consumed line contributes nothing.
		if ref.StartLine < next {
			continue
		}

		for next < ref.StartLine && next < len(src) {
			out = append(out, src[next])
			next++
		}

		spliced, spliceErr := b.spliceImport(ctx, sess, ref, src)
		if spliceErr != nil {
			return "", spliceErr
		}

		out = append(out, spliced...)
		next = ref.EndLine + 1
	}

	for next < len(src) {
		out = append(out, src[next])
		next++
	}

	text := joinLines(out)
	sess.processedText[path] = text

	return text, nil
}

// spliceImport decides one import statement's output contribution: the
// imported file's processed body, the original statement verbatim, or
// nothing for duplicates.
func (b *Bundler) spliceImport(ctx context.Context, sess *session, ref pysrc.ImportReference, src []string) ([]string, error) {
	resolved, err := b.resolver.Resolve(ref)
	if err != nil {
		return nil, err
	}

	if resolved == "" {
		// External/standard module: pass through, dedup repeats.
		if sess.externRedundant(ref) {
			return nil, nil
		}

		if ref.TopLevel() {
			sess.markExtern(ref)
		}

		return statementLines(src, ref), nil
	}

	if sess.topInlined[resolved] {
		return nil, nil
	}

	text, err := b.processFile(ctx, sess, resolved)
	if err != nil {
		return nil, err
	}

	if ref.TopLevel() {
		sess.topInlined[resolved] = true
	}

	return indentLines(textLines(text), ref.Col), nil
}
