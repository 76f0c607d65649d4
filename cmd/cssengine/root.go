package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssengine",
	Short: "Compile style declaration files into deduplicated CSS",
	Long: `Compile YAML style declarations into one stylesheet.
Every style gets a stable class name; identical content shares a class.
Values may reference theme tokens: color: "{{ .colors.primary }}"`,
	// Default behavior: run build when no subcommand is given.
	// loadConfig is called here because PreRunE of buildCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(buildCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".cssengine.yaml", "Config file path")
	pf.String("theme-file", "", "Base theme file (.yaml, .json, .toml)")
	pf.StringSlice("override", nil, "Theme files composed over the base theme, in order")
	pf.String("mode", "merge", "Theme composition mode: merge|replace")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
