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
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssengine"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/zap"
)

const defaultConfigPath = ".cssengine.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set override file and env values.
	// Flag defaults would otherwise shadow the nested config keys.
	provider := posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(cmd.Flags(), f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables, separated from loadConfig for tests.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSENGINE_BUILD_SOURCE -> build.source, CSSENGINE_VERBOSE -> verbose
	if err := k.Load(env.Provider("CSSENGINE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSENGINE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// themeSettings reads the theme flags shared by every command
func themeSettings() (base string, overrides []string, mode theme.Mode, err error) {
	base = getStringWithFallback("theme-file", "theme-file", "")
	overrides = getStringsWithFallback("override", "overrides", nil)
	mode, err = theme.ParseMode(getStringWithFallback("mode", "mode", "merge"))
	return base, overrides, mode, err
}

// buildGenerateConfig constructs the library's GenerateConfig from koanf state
func buildGenerateConfig(log *zap.Logger) (cssengine.GenerateConfig, error) {
	base, overrides, mode, err := themeSettings()
	if err != nil {
		return cssengine.GenerateConfig{}, err
	}

	return cssengine.GenerateConfig{
		SourceDir:      getStringWithFallback("source", "build.source", "styles"),
		Includes:       getStringsWithFallback("include", "build.include", cssengine.DefaultIncludes),
		ThemeFile:      base,
		ThemeOverrides: overrides,
		ThemeMode:      mode,
		OutputFile:     getStringWithFallback("out", "build.out", ""),
		Tag:            getBoolWithFallback("tag", "build.tag", false),
		Variables:      getBoolWithFallback("variables", "build.variables", false),
		VarPrefix:      getStringWithFallback("var-prefix", "build.var-prefix", cssengine.DefaultVarPrefix),
		StyleElementID: getStringWithFallback("style-id", "build.style-id", cssengine.DefaultStyleElementID),
		Prefix:         getStringWithFallback("prefix", "build.prefix", cssengine.DefaultPrefix),
		Logger:         log,
	}, nil
}

// buildLintConfig constructs the library's LintConfig from koanf state
func buildLintConfig(log *zap.Logger) (cssengine.LintConfig, error) {
	base, overrides, mode, err := themeSettings()
	if err != nil {
		return cssengine.LintConfig{}, err
	}

	return cssengine.LintConfig{
		SourceDir:          getStringWithFallback("source", "build.source", "styles"),
		Includes:           getStringsWithFallback("include", "build.include", cssengine.DefaultIncludes),
		ThemeFile:          base,
		ThemeOverrides:     overrides,
		ThemeMode:          mode,
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             log,
	}, nil
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

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
