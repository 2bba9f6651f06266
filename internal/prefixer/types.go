package prefixer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileKind selects the grammar used to parse a document
type FileKind int

// Supported file kinds
const (
	KindUnknown FileKind = iota
	KindJS
	KindJSX
	KindTS
	KindTSX
	KindCSS
)

var kindNames = map[FileKind]string{
	KindUnknown: "unknown",
	KindJS:      "js",
	KindJSX:     "jsx",
	KindTS:      "ts",
	KindTSX:     "tsx",
	KindCSS:     "css",
}

func (k FileKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FileKind(%d)", int(k))
}

// KindFromPath infers the file kind from the extension
func KindFromPath(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return KindJS
	case ".jsx":
		return KindJSX
	case ".ts", ".mts", ".cts":
		return KindTS
	case ".tsx":
		return KindTSX
	case ".css":
		return KindCSS
	}
	return KindUnknown
}

// Context tags where a candidate string was found
type Context int

// Candidate contexts
const (
	HelperCallArgument Context = iota
	ObjectPropertyValue
	JSXClassAttribute
	CSSApplyDirective
)

func (c Context) String() string {
	switch c {
	case HelperCallArgument:
		return "helper call argument"
	case ObjectPropertyValue:
		return "object property value"
	case JSXClassAttribute:
		return "jsx class attribute"
	case CSSApplyDirective:
		return "css @apply directive"
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

// Candidate is a located string value that may hold a class list
type Candidate struct {
	Context Context
	Start   int    // byte offset of the literal, quotes included
	End     int    // exclusive
	Quote   byte   // '"', '\'' or 0 for unquoted spans (CSS)
	Raw     string // source text of the literal
	Value   string // decoded string value
	JSX     bool   // JSX attribute strings are not escape-decoded

	// Exempt marks values that are variant names rather than class lists
	Exempt bool
}

// Edit replaces src[Start:End] with NewText
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Result is the outcome of one invocation over one document
type Result struct {
	Edits      []Edit         // sorted by descending Start
	Changed    int            // literals whose value changed
	Tokens     int            // tokens rewritten across all literals
	Families   map[Family]int // rewritten tokens per utility family
	Candidates int            // candidates located, exempt ones included
}

// NothingToChange reports the no-op outcome
func (r *Result) NothingToChange() bool {
	return len(r.Edits) == 0
}
