package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/twprefix"
)

var k = koanf.New(".")

// defaultPaths is used when neither arguments, flags nor config name any
var defaultPaths = []string{"src/**/*.{js,jsx,ts,tsx,css}"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twprefix.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWPREFIX_* prefix)
	if err := k.Load(env.Provider("TWPREFIX_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	TWPREFIX_PREFIX       -> prefix
//	TWPREFIX_DRY_RUN      -> dry-run
//	TWPREFIX_RENAME__FROM -> rename.from
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "TWPREFIX_"))
	parts := strings.Split(key, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "-")
	}
	return strings.Join(parts, ".")
}

// buildConfig constructs the library's Config struct from koanf state.
// args, when present, replace the configured paths.
func buildConfig(mode twprefix.Mode, args []string) twprefix.Config {
	config := twprefix.Config{
		Mode:             mode,
		Paths:            getStringsWithFallback("paths", "paths", defaultPaths),
		Prefix:           getStringWithFallback("prefix", "prefix", ""),
		Helpers:          getStringsWithFallback("helpers", "helpers", nil),
		ExemptKeys:       getStringsWithFallback("exempt-keys", "exempt-keys", nil),
		Utilities:        getStringsWithFallback("utilities", "utilities", nil),
		WorkspaceRoot:    getStringWithFallback("workspace-root", "workspace-root", ""),
		Jobs:             getIntWithFallback("jobs", "jobs", 1),
		Merge:            getBoolWithFallback("merge", "merge", false),
		DryRun:           getBoolWithFallback("dry-run", "dry-run", false),
		Strict:           getBoolWithFallback("strict", "strict", false),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}

	if len(args) > 0 {
		config.Paths = args
	}

	if mode == twprefix.ModeRename {
		// rename falls back to the add prefix as its source
		config.From = getStringWithFallback("from", "rename.from", config.Prefix)
		config.To = getStringWithFallback("to", "rename.to", "")
		config.Prefix = ""
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
