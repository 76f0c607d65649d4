package cssgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Reporter prints lint issues in golangci-lint format, one issue per
// declaration value or style
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(config LintConfig) bool {
	if config.UseColors {
		return true
	}

	// CI systems that render ANSI colors
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	fileInfo, err := os.Stdout.Stat()
	return err == nil && fileInfo.Mode()&os.ModeCharDevice != 0
}

// PrintIssues outputs issues sorted by file, line and column
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return natural.Less(issues[i].Pos.Filename, issues[j].Pos.Filename)
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter).
// Notes carry a "note:" label since they have no color of their own.
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := "note: " + issue.Text
	if style, ok := SeverityStyle(issue.Severity); ok {
		text = RenderStyle(style, issue.Text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// repeating tabs from the source line so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary with a breakdown by
// severity and by linter
func (r *Reporter) PrintSummary(result LintResult) {
	total := len(result.Issues)
	errors, warnings := CountSeverities(result.Issues)
	notes := total - errors - warnings

	fmt.Fprintln(r.w, "")

	var kinds []string
	for _, k := range []struct {
		n                int
		singular, plural string
	}{
		{errors, "error", "errors"},
		{warnings, "warning", "warnings"},
		{notes, "note", "notes"},
	} {
		if k.n > 0 {
			kinds = append(kinds, pluralizeCount(k.n, k.singular, k.plural))
		}
	}

	var parts []string
	if len(kinds) > 1 {
		parts = append(parts, strings.Join(kinds, ", "))
	}
	if result.TruncatedCount > 0 {
		parts = append(parts, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	header := pluralizeCount(total, "issue", "issues")
	if len(parts) > 0 {
		header += " (" + strings.Join(parts, "; ") + ")"
	}
	fmt.Fprintln(r.w, header+":")

	byLinter := make(map[string]int)
	for _, issue := range result.Issues {
		byLinter[issue.FromLinter]++
	}
	linters := make([]string, 0, len(byLinter))
	for linter := range byLinter {
		linters = append(linters, linter)
	}
	sort.Sort(natural.StringSlice(linters))
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, byLinter[linter])
	}

	if byLinter[LinterOrder] > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Write repeated styles with the same key order to share one class", r.useColors))
	}
	if total > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
