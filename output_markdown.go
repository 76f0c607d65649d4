package cssengine

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// WriteMarkdown writes the lint result as a Markdown report, suitable for
// pull request comments.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder
	errors, warnings := cssgen.CountSeverities(result.Issues)

	b.WriteString("# Style Lint Report\n\n")
	fmt.Fprintf(&b, "**%d issues** (%d errors, %d warnings) in %d files\n\n",
		len(result.Issues), errors, warnings, result.FilesScanned)

	b.WriteString("| Components | Styles | Rules |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n", result.Components, result.Styles, result.Rules)

	if len(result.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		b.WriteString("| Location | Severity | Linter | Message |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, issue := range result.Issues {
			severity := issue.Severity
			if severity == SeverityInfo {
				severity = "info"
			}
			fmt.Fprintf(&b, "| `%s:%d:%d` | %s | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				severity, issue.FromLinter, escapeMarkdownCell(issue.Text))
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMarkdownCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
