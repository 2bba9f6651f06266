package twprefix

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/twprefix/internal/prefixer"
	"github.com/yacobolo/twprefix/internal/twconfig"
)

// Run rewrites every file matched by config.Paths. A file that fails to parse
// or to be written is reported as an error issue; the other files still run.
// The returned error is reserved for problems that stop the whole run.
func Run(config Config) (*Result, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result := &Result{
		Mode:     config.Mode,
		To:       config.To,
		DryRun:   config.DryRun,
		Families: make(map[prefixer.Family]int),
	}

	// 1. Expand globs
	files, stats, err := ExpandPaths(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("expanding paths: %w", err)
	}
	result.Stats = stats
	log.Debug("files expanded",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	if len(files) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no files matched %s", strings.Join(config.Paths, ", ")))
		return result, nil
	}

	// 2. Resolve the prefix of every file
	prefixes, err := resolvePrefixes(config, files, result, log)
	if err != nil {
		return nil, err
	}

	// 3. Rewrite, one engine per run
	engine := newEngine(config)
	outcomes := make([]fileOutcome, len(files))

	var g errgroup.Group
	if config.Jobs > 1 {
		g.SetLimit(config.Jobs)
	} else {
		g.SetLimit(1)
	}
	for i, path := range files {
		g.Go(func() error {
			if prefixes[i] == "" {
				outcomes[i] = noPrefixOutcome(path)
				return nil
			}
			outcomes[i] = processFile(engine, path, config, prefixes[i], log)
			return nil
		})
	}
	_ = g.Wait() // per-file failures are carried by fileOutcome

	// 4. Aggregate in scan order
	for _, o := range outcomes {
		result.Files = append(result.Files, o.file)
		result.Issues = append(result.Issues, o.issues...)

		if o.file.Err != nil {
			result.ErrorCount++
			continue
		}
		if o.file.Changed > 0 {
			result.FilesChanged++
		}
		result.LiteralsChanged += o.file.Changed
		result.TokensChanged += o.file.Tokens
		for f, n := range o.file.Families {
			result.Families[f] += n
		}
	}

	return result, nil
}

// resolvePrefixes returns the prefix each file is rewritten with: the
// explicit one, else the one declared by the nearest tailwind config above the
// file (bounded by WorkspaceRoot). A file without a config gets "". The run
// fails with ErrEmptyPrefix only when no file has a prefix.
func resolvePrefixes(config Config, files []string, result *Result, log *zap.Logger) ([]string, error) {
	prefixes := make([]string, len(files))

	explicit := config.Prefix
	if config.Mode == ModeRename {
		explicit = config.From
	}
	if strings.TrimSpace(explicit) != "" {
		for i := range prefixes {
			prefixes[i] = explicit
		}
		result.Prefix = explicit
		result.PrefixSource = "flag"
		return prefixes, nil
	}

	byDir := make(map[string]twconfig.Detection)
	for i, path := range files {
		dir := filepath.Dir(path)
		d, seen := byDir[dir]
		if !seen {
			d = twconfig.Detect(dir, config.WorkspaceRoot, log)
			byDir[dir] = d
			if d.Found {
				log.Debug("prefix discovered",
					zap.String("dir", dir),
					zap.String("prefix", d.Prefix),
					zap.String("config", d.ConfigPath),
					zap.String("strategy", d.Strategy))
			}
		}
		if !d.Found {
			continue
		}

		prefixes[i] = d.Prefix
		if result.PrefixSource == "" {
			result.Prefix = d.Prefix
			result.PrefixSource = d.ConfigPath
		}
	}

	if result.PrefixSource == "" {
		return nil, ErrEmptyPrefix
	}
	log.Info("prefix discovered",
		zap.String("prefix", result.Prefix),
		zap.String("config", result.PrefixSource))
	return prefixes, nil
}

func newEngine(config Config) *prefixer.Engine {
	engine := prefixer.NewEngine()
	if len(config.Utilities) > 0 {
		engine.Vocabulary = engine.Vocabulary.With(config.Utilities...)
	}
	engine.Helpers = config.Helpers
	engine.ExemptKeys = config.ExemptKeys
	engine.Merge = config.Merge
	return engine
}

type fileOutcome struct {
	file   FileResult
	issues []Issue
}

// noPrefixOutcome reports a file no tailwind config governs
func noPrefixOutcome(path string) fileOutcome {
	return fileOutcome{
		file: FileResult{
			Path: path,
			Kind: prefixer.KindFromPath(path),
			Err:  fmt.Errorf("%s: %w", path, ErrEmptyPrefix),
		},
		issues: []Issue{errorIssue(path, 0, 0, IssueNoPrefix)},
	}
}

// processFile plans and, unless DryRun, writes one file. The engine is safe
// for concurrent use: it holds only immutable configuration.
func processFile(engine *prefixer.Engine, path string, config Config, prefix string, log *zap.Logger) fileOutcome {
	kind := prefixer.KindFromPath(path)
	out := fileOutcome{file: FileResult{Path: path, Kind: kind}}

	src, err := os.ReadFile(path)
	if err != nil {
		out.file.Err = fmt.Errorf("reading %s: %w", path, err)
		out.issues = append(out.issues, errorIssue(path, 0, 0, fmt.Sprintf(IssueIOError, out.file.Err)))
		log.Warn("file skipped", zap.String("file", path), zap.Error(err))
		return out
	}

	var res *prefixer.Result
	if config.Mode == ModeRename {
		res, err = engine.RenamePrefix(src, kind, prefix, config.To)
	} else {
		res, err = engine.AddPrefix(src, kind, prefix)
	}
	if err != nil {
		out.file.Err = err
		line, col := 0, 0
		msg := err.Error()
		if pe, ok := prefixer.AsParseError(err); ok {
			line, col, msg = pe.Line, pe.Column, pe.Message
		}
		out.issues = append(out.issues, errorIssue(path, line, col, fmt.Sprintf(IssueParseError, msg)))
		log.Warn("file not parsed", zap.String("file", path), zap.Error(err))
		return out
	}

	out.file.Candidates = res.Candidates
	out.file.Changed = res.Changed
	out.file.Tokens = res.Tokens
	out.file.Families = res.Families

	log.Debug("file planned",
		zap.String("file", path),
		zap.Stringer("kind", kind),
		zap.Int("candidates", res.Candidates),
		zap.Int("edits", len(res.Edits)))

	if res.NothingToChange() {
		return out
	}

	out.issues = append(out.issues, editIssues(path, src, res.Edits, config.DryRun)...)

	if config.DryRun {
		return out
	}

	info, err := os.Stat(path)
	if err != nil {
		out.file.Err = fmt.Errorf("stat %s: %w", path, err)
		out.issues = append(out.issues, errorIssue(path, 0, 0, fmt.Sprintf(IssueIOError, out.file.Err)))
		return out
	}
	if err := os.WriteFile(path, prefixer.Apply(src, res.Edits), info.Mode().Perm()); err != nil {
		out.file.Err = fmt.Errorf("writing %s: %w", path, err)
		out.issues = append(out.issues, errorIssue(path, 0, 0, fmt.Sprintf(IssueIOError, out.file.Err)))
		return out
	}
	out.file.Written = true

	return out
}

// editIssues converts planned edits into issues, in document order
func editIssues(path string, src []byte, edits []prefixer.Edit, dryRun bool) []Issue {
	issues := make([]Issue, 0, len(edits))
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		line, col := prefixer.LineColumn(src, e.Start)
		endLine, _ := prefixer.LineColumn(src, e.End)
		old := string(src[e.Start:e.End])

		issue := Issue{
			FromLinter:  LinterName,
			Severity:    SeverityInfo,
			Text:        fmt.Sprintf(IssueRewritten, old, e.NewText),
			SourceLines: []string{sourceLine(src, e.Start)},
			Pos:         IssuePos{Filename: GetRelativePath(path), Line: line, Column: col},
			Replacement: &Replacement{NewText: e.NewText, InlineLength: e.End - e.Start},
		}
		if dryRun {
			issue.Severity = SeverityWarning
			issue.Text = fmt.Sprintf(IssuePending, old, e.NewText)
		}
		if endLine > line {
			issue.LineRange = &LineRange{From: line, To: endLine}
		}
		issues = append(issues, issue)
	}
	return issues
}

func errorIssue(path string, line, col int, text string) Issue {
	return Issue{
		FromLinter: LinterName,
		Severity:   SeverityError,
		Text:       text,
		Pos:        IssuePos{Filename: GetRelativePath(path), Line: line, Column: col},
	}
}

// sourceLine returns the line of src holding offset, without its newline
func sourceLine(src []byte, offset int) string {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return strings.TrimRight(string(src[start:end]), "\r")
}
