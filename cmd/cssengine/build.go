package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssengine"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"generate", "gen"},
	Short:   "Compile style declaration files into one stylesheet",
	Long: `Scan declaration files, resolve theme tokens and compile every style
into a deduplicated stylesheet. Without --out the CSS is written to stdout.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("source", "styles", "Directory containing declaration files")
	f.StringSlice("include", nil, "Glob patterns for declaration files to include")
	f.String("out", "", "Output CSS file (stdout when empty)")
	f.Bool("tag", false, "Wrap the CSS in a <style> element")
	f.Bool("variables", false, "Emit theme tokens as custom properties on :root")
	f.String("var-prefix", cssengine.DefaultVarPrefix, "Custom property prefix for theme tokens")
	f.String("prefix", cssengine.DefaultPrefix, "Prefix for generated keyframe names")
	f.String("style-id", cssengine.DefaultStyleElementID, "id of the <style> element")
	f.Bool("watch", false, "Rebuild when declaration or theme files change")
	f.Bool("lint", false, "Run the linter after the build")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	log := commandLogger()
	defer func() { _ = log.Sync() }()

	config, err := buildGenerateConfig(log)
	if err != nil {
		return err
	}

	if err := buildOnce(config, os.Stdout, os.Stderr); err != nil {
		return err
	}

	// Run lint after build if --lint flag set
	if lint, _ := cmd.Flags().GetBool("lint"); lint {
		if err := runLint(); err != nil {
			return err
		}
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchAndRebuild(cmd.Context(), config, log)
	}
	return nil
}

// buildOnce runs one build. CSS goes to stdout when no output file is
// configured; the summary always goes to stderr.
func buildOnce(config cssengine.GenerateConfig, stdout, stderr io.Writer) error {
	result, err := cssengine.Generate(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if config.OutputFile == "" {
		if _, err := io.WriteString(stdout, result.CSS); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		cssengine.WriteBuildSummary(stderr, result, useColors())
	}
	return nil
}
