package cssgen

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "csslint"
	Text        string   `json:"Text"`        // "value of \"background\" is neutralized to unset"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the declaration file
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "styles/button.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 5 (1-based)
}

// Severity levels
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterSanitize = "sanitize"
	LinterOrder    = "keyorder"
	LinterSyntax   = "csssyntax"
)

// Issue messages
const (
	IssueNeutralized   = "value of %q is neutralized to unset"
	IssueDangerousKey  = "key %q is emitted verbatim and can escape the style element"
	IssueKeyOrder      = "style %q repeats %q with a different key order and will not share its class"
	IssueMalformedRule = "rule %q is rejected by the stylesheet: %v"
)

// LintConfig controls issue limiting and report rendering
type LintConfig struct {
	Verbose bool

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (linter) suffix
	UseColors          bool // Force color output
}

// LintResult contains lint findings and statistics
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	Components     int
	Styles         int
	Rules          int
	ErrorCount     int
	TruncatedCount int // Issues removed due to limits

	// Categories counts properties per category across all styles
	Categories map[PropertyCategory]int
	// TokenValues counts values referencing CSS variables
	TokenValues int

	Warnings []string
}

// OutputFormat selects how lint results are written
type OutputFormat string

// Output formats
const (
	OutputIssues   OutputFormat = "issues"
	OutputSummary  OutputFormat = "summary"
	OutputFull     OutputFormat = "full"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// CountSeverities returns the number of error and warning issues
func CountSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// LimitIssues applies max-issues-per-linter and max-same-issues constraints
// and returns the remaining issues with the number removed.
func LimitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		filtered := issues[:0:0]
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				filtered = append(filtered, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = filtered
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
