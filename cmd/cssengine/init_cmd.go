package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssengine.yaml config file",
	Long:  `Create a .cssengine.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssengine configuration
# Docs: https://github.com/yacobolo/cssengine

# Shared settings
verbose: false
theme-file: theme.yaml     # .yaml | .json | .toml
overrides: []              # composed over the base theme, in order
mode: merge                # merge | replace

# Build settings
build:
  source: styles
  include:
    - "**/*.styles.yaml"
    - "**/*.styles.yml"
  out: ""                  # empty writes to stdout
  tag: false
  variables: false
  var-prefix: theme
  prefix: cssengine
  style-id: cssengine-styles

# Linting settings
lint:
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Theme inspection
theme:
  level: AA                # AA | AAA
  target: 4.5
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
