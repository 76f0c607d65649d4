package cssengine

import "github.com/yacobolo/cssengine/internal/cssgen"

// Issue represents a single lint finding in golangci-lint format
type Issue = cssgen.Issue

// IssuePos specifies the exact location of an issue
type IssuePos = cssgen.IssuePos

// LintResult contains lint findings and statistics
type LintResult = cssgen.LintResult

// OutputFormat selects how lint results are written
type OutputFormat = cssgen.OutputFormat

// Severity levels
const (
	SeverityError   = cssgen.SeverityError
	SeverityWarning = cssgen.SeverityWarning
	SeverityInfo    = cssgen.SeverityInfo
)

// Output formats
const (
	OutputIssues   = cssgen.OutputIssues
	OutputSummary  = cssgen.OutputSummary
	OutputFull     = cssgen.OutputFull
	OutputJSON     = cssgen.OutputJSON
	OutputMarkdown = cssgen.OutputMarkdown
)
