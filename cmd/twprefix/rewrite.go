package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twprefix"
)

// runRewrite is shared by apply, rename and remove
func runRewrite(config twprefix.Config) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)

	logger, err := newLogger(config.Verbose, quiet)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	config.Logger = logger

	result, err := twprefix.Run(config)
	if errors.Is(err, twprefix.ErrEmptyPrefix) {
		return fmt.Errorf("%w: pass --prefix or set prefix in tailwind.config.js", err)
	}
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	outputFormat := getStringWithFallback("output-format", "output-format", "")
	format := twprefix.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		twprefix.WriteOutput(os.Stdout, result, format, config)
	}

	// Exit code logic - "Soft Gate" approach
	if result.Failed(config.Strict) {
		os.Exit(1)
	}

	return nil
}

func preRunLoadConfig(cmd *cobra.Command, _ []string) error {
	return loadConfig(cmd)
}
