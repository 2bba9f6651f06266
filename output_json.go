package twprefix

import (
	"encoding/json"
	"io"
	"sort"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Mode      string       `json:"mode"`
	Prefix    string       `json:"prefix"`
	To        string       `json:"to,omitempty"`
	Source    string       `json:"prefix_source"`
	DryRun    bool         `json:"dry_run"`
	Summary   JSONSummary  `json:"summary"`
	Families  []JSONFamily `json:"families"`
	Files     []JSONFile   `json:"files"`
	Issues    []JSONIssue  `json:"issues"`
	Warnings  []string     `json:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
	FilesChanged    int `json:"files_changed"`
	LiteralsChanged int `json:"literals_changed"`
	TokensChanged   int `json:"tokens_changed"`
	Errors          int `json:"errors"`
}

// JSONFamily counts rewritten tokens of one utility family
type JSONFamily struct {
	Family string `json:"family"`
	Tokens int    `json:"tokens"`
}

// JSONFile is the per-file outcome
type JSONFile struct {
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	Candidates int    `json:"candidates"`
	Changed    int    `json:"changed"`
	Tokens     int    `json:"tokens"`
	Written    bool   `json:"written"`
	Error      string `json:"error,omitempty"`
}

// JSONIssue represents a single rewrite or failure
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"` // Optional source line
	Replacement string `json:"replacement,omitempty"`
}

// WriteJSON writes the run result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	jsonFiles := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		jsonFiles[i] = JSONFile{
			Path:       f.Path,
			Kind:       f.Kind.String(),
			Candidates: f.Candidates,
			Changed:    f.Changed,
			Tokens:     f.Tokens,
			Written:    f.Written,
		}
		if f.Err != nil {
			jsonFiles[i].Error = f.Err.Error()
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Mode:      result.Mode.String(),
		Prefix:    result.Prefix,
		To:        result.To,
		Source:    result.PrefixSource,
		DryRun:    result.DryRun,
		Summary: JSONSummary{
			FilesScanned:    result.Stats.FilesScanned,
			FilesSkipped:    result.Stats.FilesSkipped,
			FilesChanged:    result.FilesChanged,
			LiteralsChanged: result.LiteralsChanged,
			TokensChanged:   result.TokensChanged,
			Errors:          result.ErrorCount,
		},
		Families: sortedFamilies(result),
		Files:    jsonFiles,
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}

// sortedFamilies orders families by token count, then name
func sortedFamilies(result *Result) []JSONFamily {
	families := make([]JSONFamily, 0, len(result.Families))
	for f, n := range result.Families {
		families = append(families, JSONFamily{Family: string(f), Tokens: n})
	}
	sort.Slice(families, func(i, j int) bool {
		if families[i].Tokens != families[j].Tokens {
			return families[i].Tokens > families[j].Tokens
		}
		return families[i].Family < families[j].Family
	})
	return families
}
