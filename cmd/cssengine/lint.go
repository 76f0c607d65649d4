package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssengine"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint style declaration files",
	Long: `Check declaration files for values the sanitizer neutralizes, rules the
stylesheet rejects and styles that repeat another style in a different key order.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("source", "styles", "Directory containing declaration files")
	f.StringSlice("include", nil, "Glob patterns for declaration files to include")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `cssengine lint` and `cssengine build --lint`.
func runLint() error {
	log := commandLogger()
	defer func() { _ = log.Sync() }()

	lintConfig, err := buildLintConfig(log)
	if err != nil {
		return err
	}

	result, err := cssengine.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssengine.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssengine.WriteOutput(os.Stdout, result, format, lintConfig); err != nil {
			return err
		}
	}

	// Strict mode fails on any issue, otherwise only errors fail
	if lintConfig.Strict && len(result.Issues) > 0 {
		return errCheckFailed
	}
	if result.ErrorCount > 0 {
		return errCheckFailed
	}
	return nil
}
