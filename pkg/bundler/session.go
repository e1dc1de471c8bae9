package bundler

import "github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"

// session carries the dedup state of one Bundle call. It is threaded
// explicitly through every recursive processFile call and never outlives
// or is shared across bundle invocations.
type session struct {
	// processed marks files whose processing has started; processedText
	// memoizes the finished result. A file that is marked but has no memo
	// entry is in progress, and a revisit yields the empty inline that
	// truncates import cycles.
	processed     map[string]bool
	processedText map[string]string

	// topInlined holds locally-resolved paths that were inlined at column
	// 0 of their importing file, globally across the traversal. Any later
	// occurrence of such a path, at any indentation, is elided.
	topInlined map[string]bool

	// seenPlain holds module names emitted by top-level plain imports of
	// unresolved specifiers; seenFrom holds bound names per module for
	// top-level from-imports (pysrc.WildcardName for `import *`).
	seenPlain map[string]bool
	seenFrom  map[string]map[string]bool
}

func newSession() *session {
	return &session{
		processed:     make(map[string]bool),
		processedText: make(map[string]string),
		topInlined:    make(map[string]bool),
		seenPlain:     make(map[string]bool),
		seenFrom:      make(map[string]map[string]bool),
	}
}

// externRedundant reports whether an unresolved import statement is fully
// subsumed by previously emitted top-level imports: adding its names to
// the seen set would not grow the set.
func (s *session) externRedundant(ref pysrc.ImportReference) bool {
	if len(ref.Names) == 0 {
		return false
	}

	seen := s.seenPlain
	if ref.From {
		seen = s.seenFrom[ref.Module]
	}

	for _, name := range ref.Names {
		if !seen[name] {
			return false
		}
	}

	return true
}

// markExtern records the names bound by an unresolved top-level import so
// later repeats are elided.
func (s *session) markExtern(ref pysrc.ImportReference) {
	if ref.From {
		seen := s.seenFrom[ref.Module]
		if seen == nil {
			seen = make(map[string]bool)
			s.seenFrom[ref.Module] = seen
		}

		for _, name := range ref.Names {
			seen[name] = true
		}

		return
	}

	for _, name := range ref.Names {
		s.seenPlain[name] = true
	}
}
