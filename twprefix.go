// Package twprefix adds, renames, or removes a Tailwind class prefix across a
// source tree.
//
// Class lists are found in JSX className/class attributes, in the string
// arguments of class-composition helpers (cva, cn, clsx, ...), in the string
// values of variant maps, and in CSS @apply directives. Only the byte ranges
// of those literals are rewritten; formatting elsewhere is left alone.
//
// # Adding a prefix
//
//	result, err := twprefix.Run(twprefix.Config{
//		Paths:  []string{"src/**/*.{ts,tsx}"},
//		Prefix: "tw-",
//	})
//
// When Prefix is empty each file uses the prefix of the nearest
// tailwind.config.* above it, searching no higher than WorkspaceRoot.
//
// # Renaming or removing
//
//	result, err := twprefix.Run(twprefix.Config{
//		Mode:  twprefix.ModeRename,
//		Paths: []string{"src/**/*.tsx"},
//		From:  "tw-",
//		To:    "", // remove
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/twprefix/cmd/twprefix@latest
package twprefix

// Public API:
// - Run(config Config) (*Result, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config)
