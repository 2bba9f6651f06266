package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twprefix",
	Short: "Add, rename, or remove a Tailwind class prefix across a codebase",
	Long: `Rewrites utility classes inside JSX class attributes, class helper calls
(cva, cn, clsx, ...), variant maps and CSS @apply directives.
Only the string literals holding class lists are touched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging and statistics")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".twprefix.yaml", "Config file path")
	pf.String("workspace-root", "", "Stop tailwind config discovery at this directory")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addRewriteFlags registers the flags shared by apply, rename and remove
func addRewriteFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("paths", nil, "File patterns to rewrite (default: src/**/*.{js,jsx,ts,tsx,css})")
	f.StringSlice("helpers", nil, "Class helper functions (default: cva,cn,clsx,classnames,cx,twMerge,twJoin,tv)")
	f.StringSlice("exempt-keys", nil, "Object keys whose values are variant names (default: defaultVariants)")
	f.StringSlice("utilities", nil, "Extra utility names; a trailing - marks a stem")
	f.Int("jobs", 1, "Files processed concurrently")
	f.Bool("dry-run", false, "Report changes without writing files")
	f.Bool("strict", false, "Exit 1 when a dry run finds pending changes (CI mode)")
	f.String("output-format", "", "Output format: text|summary|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (twprefix) suffix on issues")
}
