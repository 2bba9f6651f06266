package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twprefix/internal/twconfig"
)

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Print the prefix declared by the nearest tailwind config",
	Long: `Walk up from path (default: current directory) to the first
tailwind.config.{js,cjs,mjs,ts,cts,mts} and print its prefix.
Exits 1 when no prefix is found.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: preRunLoadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := "."
		if len(args) == 1 {
			start = args[0]
		}
		root := getStringWithFallback("workspace-root", "workspace-root", "")

		logger, err := newLogger(getBoolWithFallback("verbose", "verbose", false), false)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		d := twconfig.Detect(start, root, logger)
		out := cmd.OutOrStdout()

		switch {
		case d.Found:
			fmt.Fprintf(out, "%s\t%s\t(%s)\n", d.Prefix, d.ConfigPath, d.Strategy)
		case d.ConfigPath != "":
			fmt.Fprintf(out, "no prefix in %s\n", d.ConfigPath)
			os.Exit(1)
		default:
			fmt.Fprintln(out, "no tailwind config found")
			os.Exit(1)
		}
		return nil
	},
}
