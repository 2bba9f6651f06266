package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twprefix.yaml config file",
	Long:  `Create a .twprefix.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twprefix.yaml"); err == nil && !force {
			return fmt.Errorf(".twprefix.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twprefix.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .twprefix.yaml")
		return nil
	},
}

const defaultConfig = `# twprefix configuration
# Flags override TWPREFIX_* environment variables, which override this file.

# Prefix to add; leave empty to read it from tailwind.config.*
prefix: ""
workspace-root: ""

paths:
  - "src/**/*.{js,jsx,ts,tsx,css}"

# Class helper functions whose string arguments are class lists
helpers: [cva, cn, clsx, classnames, cx, twMerge, twJoin, tv]
# Object keys whose values are variant names, not class lists
exempt-keys: [defaultVariants]
# Extra utilities from plugins; a trailing - marks a stem
utilities: []

jobs: 1
merge: false
dry-run: false
strict: false            # with dry-run: exit 1 when changes are pending

output-format: text      # text | summary | json
print-lines: true
print-linter-name: true
verbose: false

rename:
  from: ""
  to: ""
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
