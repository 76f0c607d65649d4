package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"github.com/yacobolo/cssengine"
	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the composed theme",
	Long: `Compose the base theme with its overrides and print the token tree.
--vars prints the tokens as CSS custom properties, --contrast checks the
known foreground/background color pairs against WCAG.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTheme,
}

func init() {
	f := themeCmd.Flags()
	f.Bool("vars", false, "Print the theme as CSS custom properties")
	f.String("var-prefix", cssengine.DefaultVarPrefix, "Custom property prefix")
	f.Bool("contrast", false, "Check color pairs for WCAG contrast")
	f.String("level", "AA", "WCAG level for --contrast: AA|AAA")
	f.Float64("target", 4.5, "Contrast ratio suggested colors must reach")
}

func runTheme(cmd *cobra.Command, _ []string) error {
	log := commandLogger()
	defer func() { _ = log.Sync() }()

	base, overrides, mode, err := themeSettings()
	if err != nil {
		return err
	}
	if base == "" {
		return fmt.Errorf("%w: pass --theme-file or set theme-file in the config", cssengine.ErrNoTheme)
	}
	tree, err := cssengine.LoadTheme(base, overrides, mode, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	vars, _ := cmd.Flags().GetBool("vars")
	contrast, _ := cmd.Flags().GetBool("contrast")

	switch {
	case vars:
		prefix := getStringWithFallback("var-prefix", "build.var-prefix", cssengine.DefaultVarPrefix)
		fmt.Fprintln(out, cssengine.VariablesCSS(tree, prefix))
	case contrast:
		level := theme.Level(strings.ToUpper(getStringWithFallback("level", "theme.level", "AA")))
		if level != theme.LevelAA && level != theme.LevelAAA {
			return fmt.Errorf("unknown WCAG level %q (want AA or AAA)", level)
		}
		target := getFloat64WithFallback("target", "theme.target", 4.5)
		if n := writeContrastReport(out, tree, level, target); n > 0 {
			return errCheckFailed
		}
	default:
		fmt.Fprint(out, themeTree(tree, base).String())
	}
	return nil
}

// themeTree renders the token tree with keys in natural order
func themeTree(tree *theme.Tree, title string) treeprint.Tree {
	root := treeprint.NewWithRoot(title)
	addBranch(root, tree.Raw())
	return root
}

func addBranch(node treeprint.Tree, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok {
			addBranch(node.AddBranch(k), sub)
			continue
		}
		node.AddMetaNode(k, fmt.Sprint(m[k]))
	}
}

// writeContrastReport prints every failing pair with a suggested
// foreground and returns the number of failures.
func writeContrastReport(w io.Writer, tree *theme.Tree, level theme.Level, target float64) int {
	issues := theme.CheckThemeContrast(tree, level)
	colors := useColors()

	if len(issues) == 0 {
		fmt.Fprintf(w, "%s all color pairs pass WCAG %s\n",
			cssgen.RenderStyle(cssgen.StyleGreen, "✓", colors), level)
		return 0
	}

	for _, issue := range issues {
		severity := cssengine.SeverityWarning
		if issue.FailsLarge {
			severity = cssengine.SeverityError
		}
		style, _ := cssgen.SeverityStyle(severity)
		fmt.Fprintf(w, "%s %s: ratio %.2f, %s requires %.1f\n",
			cssgen.RenderStyle(style, severity, colors), issue.Pair, issue.Ratio, issue.Level, issue.Required)

		fg := tree.String("colors." + issue.Foreground)
		bg := tree.String("colors." + issue.Background)
		if suggestion, ok := theme.SuggestContrastColor(fg, bg, target); ok {
			fmt.Fprintf(w, "  try colors.%s: %s (was %s)\n", issue.Foreground, suggestion, fg)
		}
	}
	fmt.Fprintf(w, "\n%d color pair(s) below WCAG %s\n", len(issues), level)
	return len(issues)
}
