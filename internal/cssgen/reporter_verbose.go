package cssgen

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints build statistics and the property breakdown
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs file, style and rule counts
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Style Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:   %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Skipped:   %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Components:      %d\n", result.Components)
	fmt.Fprintf(r.w, "Styles:          %d\n", result.Styles)
	fmt.Fprintf(r.w, "Rules:           %d\n", result.Rules)
	if result.ErrorCount > 0 {
		fmt.Fprintf(r.w, "Rejected Rules:  %d\n", result.ErrorCount)
	}
}

// PrintCategories shows how properties spread over categories
func (r *VerboseReporter) PrintCategories(result LintResult) {
	total := 0
	for _, n := range result.Categories {
		total += n
	}
	if total == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Properties", r.useColors))
	fmt.Fprintln(r.w, "----------")
	for _, cat := range Categories {
		n := result.Categories[cat]
		if n == 0 {
			continue
		}
		fmt.Fprintf(r.w, "%-11s %4d ", cat, n)
		printProgressBar(r.w, float64(n)*100/float64(total))
	}

	fmt.Fprintln(r.w, "")
	tokenShare := float64(result.TokenValues) * 100 / float64(total)
	fmt.Fprintf(r.w, "Token values: %d (%.1f%%)\n", result.TokenValues, tokenShare)
}

// PrintWarnings shows non-fatal problems met while loading
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar draws a 20 cell bar followed by the percentage
func printProgressBar(w io.Writer, percentage float64) {
	const width = 20
	filled := int(percentage / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		percentage)
}
