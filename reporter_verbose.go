package twprefix

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs run statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Prefix Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	prefix := result.Prefix
	if result.Mode == ModeRename {
		prefix = fmt.Sprintf("%q -> %q", result.Prefix, result.To)
	} else {
		prefix = fmt.Sprintf("%q", prefix)
	}

	fmt.Fprintf(r.w, "Mode:              %s\n", result.Mode)
	fmt.Fprintf(r.w, "Prefix:            %s (%s)\n", prefix, result.PrefixSource)
	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:     %d\n", result.Stats.FilesSkipped)
	fmt.Fprintf(r.w, "Files Changed:     %d\n", result.FilesChanged)
	fmt.Fprintf(r.w, "Class Lists:       %d\n", result.LiteralsChanged)
	fmt.Fprintf(r.w, "Tokens Rewritten:  %d\n", result.TokensChanged)
	fmt.Fprintf(r.w, "Errors:            %d\n", result.ErrorCount)
}

// PrintFamilies shows rewritten tokens per utility family
func (r *VerboseReporter) PrintFamilies(result Result) {
	families := sortedFamilies(&result)
	if len(families) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Utility Families", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	for _, f := range families {
		fmt.Fprintf(r.w, "%-24s %d\n", f.Family, f.Tokens)
	}
}

// PrintWarnings shows run warnings
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
