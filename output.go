package cssengine

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// DetermineOutputFormat selects the output format from the format flag.
// Quiet and unknown formats fall back to issues only.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputMarkdown:
		return WriteMarkdown(w, result)
	}

	rc := config.report()
	reporter := cssgen.NewReporter(w, rc)
	verbose := cssgen.NewVerboseReporter(w, reporter.UseColors())

	if format != OutputSummary {
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	if format == OutputSummary || format == OutputFull {
		verbose.PrintStatistics(*result)
		verbose.PrintCategories(*result)
	}
	verbose.PrintWarnings(*result)
	return nil
}

// WriteBuildSummary prints the outcome of Generate
func WriteBuildSummary(w io.Writer, result *GenerateResult, useColors bool) {
	fmt.Fprintf(w, "%s %d classes from %d components (%d files, %d rules)\n",
		cssgen.RenderStyle(cssgen.StyleGreen, "✓", useColors),
		len(result.Classes), result.Components, result.FilesScanned, result.Rules)

	if result.Stats.StaticHits > 0 {
		fmt.Fprintf(w, "  %d styles shared an existing class\n", result.Stats.StaticHits)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", cssgen.RenderStyle(cssgen.StyleYellow, "⚠", useColors), warning)
	}
}
