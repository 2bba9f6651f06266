package twprefix

import (
	"io"
	"os"
)

// OutputFormat selects how a result is printed
type OutputFormat int

// Output formats
const (
	OutputText    OutputFormat = iota // Issues + summary (golangci-lint style)
	OutputSummary                     // Statistics and family breakdown only
	OutputJSON                        // Machine-readable JSON
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputText
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	case "text", "issues", "":
		return OutputText
	}

	// Invalid format, fall back to the default
	return OutputText
}

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) {
	switch format {
	case OutputText:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		if config.Verbose {
			verboseReporter := NewVerboseReporter(w, reporter.UseColors())
			verboseReporter.PrintStatistics(*result)
			verboseReporter.PrintFamilies(*result)
			verboseReporter.PrintWarnings(*result)
		}

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintFamilies(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
