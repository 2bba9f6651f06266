package twprefix

// Issue represents a single rewrite or failure in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "twprefix"
	Text        string       `json:"Text"`        // "\"flex\" -> \"tw-flex\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Set when a literal spans lines
	Replacement *Replacement `json:"Replacement"` // The rewritten literal
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Button.tsx"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the literal)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement is the new text of a rewritten literal
type Replacement struct {
	NewText      string // "\"tw-flex tw-p-4\""
	InlineLength int    // Length of text replaced
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName tags every issue produced by a run
const LinterName = "twprefix"

// Issue text formats
const (
	IssueRewritten  = "rewrote %s -> %s"
	IssuePending    = "class list %s should be %s"
	IssueParseError = "cannot parse: %s"
	IssueIOError    = "%s"
	IssueNoPrefix   = "no tailwind config prefix governs this file"
)
