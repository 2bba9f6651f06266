package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/twprefix"
)

var renameCmd = &cobra.Command{
	Use:   "rename [paths...]",
	Short: "Replace one prefix with another",
	Long: `Swap --from for --to on every prefixed utility. Tokens that merely start
with the old prefix but are not utilities (tw-logo) are left alone.`,
	PreRunE: preRunLoadConfig,
	RunE: func(_ *cobra.Command, args []string) error {
		return runRewrite(buildConfig(twprefix.ModeRename, args))
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [paths...]",
	Short: "Strip a prefix from every utility class",
	Long: `Remove the prefix given by --prefix (default: from tailwind config).
Equivalent to rename --to "".`,
	PreRunE: preRunLoadConfig,
	RunE: func(_ *cobra.Command, args []string) error {
		config := buildConfig(twprefix.ModeRename, args)
		config.From = getStringWithFallback("prefix", "rename.from", "")
		config.To = ""
		return runRewrite(config)
	},
}

func init() {
	f := renameCmd.Flags()
	f.String("from", "", "Current prefix (default: from tailwind config)")
	f.String("to", "", "New prefix; empty removes the prefix")
	addRewriteFlags(renameCmd)

	removeCmd.Flags().StringP("prefix", "p", "", "Prefix to remove (default: from tailwind config)")
	addRewriteFlags(removeCmd)
}
