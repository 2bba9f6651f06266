package twprefix

import (
	"errors"

	"go.uber.org/zap"

	"github.com/yacobolo/twprefix/internal/prefixer"
)

// Mode selects the rewrite applied to every class list
type Mode int

const (
	// ModeAdd inserts Config.Prefix before every known utility
	ModeAdd Mode = iota
	// ModeRename replaces Config.From with Config.To; an empty To removes it
	ModeRename
)

func (m Mode) String() string {
	if m == ModeRename {
		return "rename"
	}
	return "add"
}

// ErrEmptyPrefix is returned when no prefix was given and none could be
// discovered from a tailwind config
var ErrEmptyPrefix = errors.New("no prefix given and none found in tailwind config")

// Config holds rewrite configuration
type Config struct {
	Paths []string // Glob patterns (e.g., "src/**/*.{ts,tsx}")
	Mode  Mode

	Prefix string // ModeAdd; empty = discover
	From   string // ModeRename; empty = discover
	To     string // ModeRename; empty removes the prefix

	Helpers       []string // nil = prefixer.DefaultHelpers
	ExemptKeys    []string // nil = prefixer.DefaultExemptKeys
	Utilities     []string // extra vocabulary entries ("btn", "stack-")
	WorkspaceRoot string   // stops config discovery; "" = filesystem root

	Jobs   int  // concurrent files, <= 1 = sequential
	Merge  bool // collapse conflicting utilities before prefixing
	DryRun bool // plan but do not write
	Strict bool // a dry run with pending changes fails

	Verbose          bool
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (twprefix) suffix
	UseColors        bool // Force color output

	Logger *zap.Logger // nil = no logging
}

// FileResult is the outcome for one file
type FileResult struct {
	Path       string
	Kind       prefixer.FileKind
	Candidates int
	Changed    int // literals rewritten
	Tokens     int // tokens rewritten
	Families   map[prefixer.Family]int
	Written    bool
	Err        error
}

// Result aggregates a run over all files
type Result struct {
	Mode         Mode
	Prefix       string // resolved prefix (ModeAdd) or From (ModeRename)
	To           string
	PrefixSource string // "flag" or the config file it was read from
	DryRun       bool

	Files []FileResult // in scan order
	Stats ScanStats

	FilesChanged    int
	LiteralsChanged int
	TokensChanged   int
	Families        map[prefixer.Family]int

	Issues     []Issue
	ErrorCount int // files that failed to parse or could not be read/written
	Warnings   []string
}

// NothingToChange reports a run that located no literal needing a rewrite
func (r *Result) NothingToChange() bool {
	return r.LiteralsChanged == 0
}

// Failed applies the soft gate: errors always fail; in strict mode a dry run
// that found pending changes fails too
func (r *Result) Failed(strict bool) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return strict && r.DryRun && r.LiteralsChanged > 0
}
