// Package prefixer rewrites utility-class tokens embedded in source code.
//
// One invocation processes one document snapshot end to end:
//
//  1. Parse the document (tree-sitter for scripts, the CSS lexer for stylesheets)
//  2. Locate candidate string literals: helper call arguments, object property
//     values and JSX class attributes (or @apply spans in CSS)
//  3. Gate object property values with LooksLikeClassList and skip variant names
//  4. Rewrite each value token by token against the utility Vocabulary
//  5. Plan byte-range edits, sorted back to front
//
// Nothing is shared between invocations; the output depends only on the source
// text, the kind, and the prefix arguments.
package prefixer

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

// Engine wires the locator, classifier, rewriter and planner
type Engine struct {
	Vocabulary *Vocabulary
	Helpers    []string // nil = DefaultHelpers
	ExemptKeys []string // nil = DefaultExemptKeys

	// Merge collapses conflicting utilities ("p-2 p-4" -> "p-4") before a
	// prefix is added. Only unprefixed lists are merged.
	Merge bool
}

// NewEngine returns an engine with the default vocabulary, helpers and exempt keys
func NewEngine() *Engine {
	return &Engine{Vocabulary: DefaultVocabulary()}
}

// AddPrefix plans the edits that prefix every eligible class string of src
func (e *Engine) AddPrefix(src []byte, kind FileKind, prefix string) (*Result, error) {
	rw := NewRewriter(e.Vocabulary)
	return e.run(src, kind, func(value string) (string, []Family) {
		if e.Merge {
			value = e.merge(value, prefix)
		}
		return rw.applyPrefix(value, prefix)
	})
}

// RenamePrefix plans the edits that swap oldPrefix for newPrefix. An empty
// newPrefix removes the prefix.
func (e *Engine) RenamePrefix(src []byte, kind FileKind, oldPrefix, newPrefix string) (*Result, error) {
	rw := NewRewriter(e.Vocabulary)
	return e.run(src, kind, func(value string) (string, []Family) {
		return rw.renamePrefix(value, oldPrefix, newPrefix)
	})
}

// Candidates returns the located literals of src with exempt and gated ones
// removed, i.e. every string the engine would hand to the rewriter
func (e *Engine) Candidates(src []byte, kind FileKind) ([]Candidate, error) {
	all, err := e.locate(src, kind)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, c := range all {
		if eligible(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *Engine) run(src []byte, kind FileKind, transform Transform) (*Result, error) {
	candidates, err := e.locate(src, kind)
	if err != nil {
		return nil, err
	}

	return Plan(candidates, transform)
}

// locate dispatches on the file kind and marks ineligible candidates exempt
func (e *Engine) locate(src []byte, kind FileKind) ([]Candidate, error) {
	var candidates []Candidate
	if kind == KindCSS {
		found, err := LocateApply(src)
		if err != nil {
			return nil, err
		}
		candidates = found
	} else {
		root, err := Parse(src, kind)
		if err != nil {
			return nil, err
		}
		candidates = NewLocator(e.Helpers, e.ExemptKeys).Locate(root)
	}

	for i := range candidates {
		if !eligible(candidates[i]) {
			candidates[i].Exempt = true
		}
	}
	return candidates, nil
}

// eligible applies the per-context rules: helper arguments, JSX class
// attributes and @apply spans are class lists by convention; object property
// values must look like one.
func eligible(c Candidate) bool {
	if c.Exempt {
		return false
	}
	if c.Context == ObjectPropertyValue {
		return LooksLikeClassList(c.Value)
	}
	return true
}

// merge runs tailwind-merge over lists that carry no prefix yet; the default
// merge config does not know about prefixes
func (e *Engine) merge(value, prefix string) string {
	if prefix != "" && strings.Contains(value, prefix) {
		return value
	}
	merged := twmerge.Merge(value)
	if merged == "" {
		return value
	}
	return merged
}
