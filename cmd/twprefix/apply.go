package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/twprefix"
)

var applyCmd = &cobra.Command{
	Use:     "apply [paths...]",
	Aliases: []string{"add"},
	Short:   "Add a prefix to every utility class",
	Long: `Insert the prefix before every known utility, after variants and the
negative/important markers: md:hover:-mt-4 -> md:hover:-tw-mt-4.
Without --prefix the prefix is read from the nearest tailwind.config.*.`,
	PreRunE: preRunLoadConfig,
	RunE: func(_ *cobra.Command, args []string) error {
		return runRewrite(buildConfig(twprefix.ModeAdd, args))
	},
}

func init() {
	f := applyCmd.Flags()
	f.StringP("prefix", "p", "", "Prefix to add (default: from tailwind config)")
	f.Bool("merge", false, "Collapse conflicting utilities before prefixing")
	addRewriteFlags(applyCmd)
}
