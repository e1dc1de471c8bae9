// Package depgraph computes the transitive set of local Python files an
// entry file depends on, for change tracking. Graph construction is
// bounded by a deadline and guarded against circular import graphs;
// results are memoized per (entry, base directory) pair because source
// files are treated as immutable for the duration of a run.
package depgraph

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"
	"github.com/Sumatoshi-tech/bundlefang/pkg/resolver"
)

// Fatal dependency-graph failures. Neither returns a partial set.
var (
	ErrCircularImport = errors.New("failed to analyze the dependency graph (circular imports)")
	ErrTimeout        = errors.New("failed to analyze the dependency graph (timeout)")
)

const tracerName = "bundlefang/depgraph"

// Timeout defaults. Windows CI runners are slow enough to need the longer
// allowance.
const (
	DefaultTimeout        = 1 * time.Second
	DefaultWindowsTimeout = 5 * time.Second
	DefaultCacheSize      = 4096
)

// packageInitFile is excluded from dependency sets.
const packageInitFile = "__init__.py"

// cacheKeySeparator joins (entry, base) into one cache key; NUL cannot
// appear in a file path.
const cacheKeySeparator = "\x00"

// PlatformTimeout returns the default graph-construction deadline for the
// current platform.
func PlatformTimeout() time.Duration {
	if runtime.GOOS == "windows" {
		return DefaultWindowsTimeout
	}

	return DefaultTimeout
}

// Builder computes dependency graphs. One Builder is meant to live for
// the whole process; its memo cache is append-only and never invalidated.
type Builder struct {
	parser  *pysrc.Parser
	cache   *lru.Cache[string, []string]
	timeout time.Duration
}

// New creates a Builder. Non-positive arguments select the platform
// default timeout and DefaultCacheSize.
func New(timeout time.Duration, cacheSize int) (*Builder, error) {
	if timeout <= 0 {
		timeout = PlatformTimeout()
	}

	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create dependency cache: %w", err)
	}

	return &Builder{
		parser:  pysrc.NewParser(),
		cache:   cache,
		timeout: timeout,
	}, nil
}

// ListDependencies returns the absolute paths of the local files
// entryPath transitively depends on, restricted to baseDir. The entry
// file itself is always included; package init files and modules outside
// baseDir are not. The result is a deduplicated set, sorted for
// determinism.
func (b *Builder) ListDependencies(ctx context.Context, entryPath, baseDir string) ([]string, error) {
	entry, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, fmt.Errorf("resolve entry path %s: %w", entryPath, err)
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory %s: %w", baseDir, err)
	}

	key := entry + cacheKeySeparator + base
	if cached, ok := b.cache.Get(key); ok {
		return slices.Clone(cached), nil
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "depgraph.ListDependencies",
		trace.WithAttributes(attribute.String("depgraph.entry", entry)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type graphResult struct {
		deps []string
		err  error
	}

	resultCh := make(chan graphResult, 1)

	go func() {
		deps, buildErr := b.buildGraph(ctx, entry, base)
		resultCh <- graphResult{deps: deps, err: buildErr}
	}()

	select {
	case <-ctx.Done():
		// Partial work is discarded so the cache never holds an
		// incomplete result.
		err = fmt.Errorf("%w: %s", ErrTimeout, entry)
		span.RecordError(err)

		return nil, err
	case res := <-resultCh:
		if res.err != nil {
			span.RecordError(res.err)

			return nil, res.err
		}

		b.cache.Add(key, res.deps)

		return slices.Clone(res.deps), nil
	}
}

// buildGraph walks imports breadth-first from entry, resolving against
// base as the only search root, and rejects cyclic graphs.
func (b *Builder) buildGraph(ctx context.Context, entry, base string) ([]string, error) {
	res, err := resolver.New([]string{base})
	if err != nil {
		return nil, err
	}

	graph := newImportGraph()
	graph.node(entry)

	deps := map[string]bool{entry: true}
	visited := make(map[string]bool)
	queue := []string{entry}

	for len(queue) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		file := queue[0]
		queue = queue[1:]

		if visited[file] {
			continue
		}

		visited[file] = true

		raw, readErr := os.ReadFile(file)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", file, readErr)
		}

		refs, parseErr := b.parser.ExtractImports(ctx, raw)
		if parseErr != nil {
			return nil, fmt.Errorf("parse %s: %w", file, parseErr)
		}

		for _, ref := range refs {
			resolved, resolveErr := res.Resolve(ref)
			if resolveErr != nil {
				return nil, resolveErr
			}

			if resolved == "" {
				// Builtin/standard module.
				continue
			}

			graph.addEdge(file, resolved)

			if includeDependency(resolved, base) {
				deps[resolved] = true
			}

			if !visited[resolved] {
				queue = append(queue, resolved)
			}
		}
	}

	if graph.hasCycle() {
		return nil, fmt.Errorf("%w: %s", ErrCircularImport, entry)
	}

	out := make([]string, 0, len(deps))
	for dep := range deps {
		out = append(out, dep)
	}

	sort.Strings(out)

	return out, nil
}

// includeDependency reports whether a resolved file belongs in the
// dependency set: strictly nested under base and not a package init file.
func includeDependency(path, base string) bool {
	if filepath.Base(path) == packageInitFile {
		return false
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}

	return rel != "." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != ".."
}
