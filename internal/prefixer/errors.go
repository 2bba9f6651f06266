package prefixer

import (
	"errors"
	"fmt"
)

// ParseError reports source text that is not valid for its declared kind.
// No edits are produced for a document that fails to parse.
type ParseError struct {
	Kind    FileKind
	Message string
	Line    int // 1-based, 0 when unknown
	Column  int // 1-based, 0 when unknown
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse %s: %s", e.Kind, e.Message)
}

// ErrOverlappingEdits is returned by the planner when two literal ranges
// intersect, which a well-formed syntax tree never produces
var ErrOverlappingEdits = errors.New("overlapping edits")

// ErrUnsupportedKind is returned for documents whose kind has no grammar
var ErrUnsupportedKind = errors.New("unsupported file kind")

// AsParseError unwraps err into a *ParseError
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
