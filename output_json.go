package cssengine

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// JSONOutput is the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
	Truncated    int `json:"truncated,omitempty"`
}

// JSONStats contains style statistics
type JSONStats struct {
	Components  int                      `json:"components"`
	Styles      int                      `json:"styles"`
	Rules       int                      `json:"rules"`
	TokenValues int                      `json:"token_values"`
	Categories  map[PropertyCategory]int `json:"categories"`
}

// JSONIssue represents a single lint issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	errors, warnings := cssgen.CountSeverities(result.Issues)

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		severity := issue.Severity
		if severity == SeverityInfo {
			severity = "info"
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
			Truncated:    result.TruncatedCount,
		},
		Stats: JSONStats{
			Components:  result.Components,
			Styles:      result.Styles,
			Rules:       result.Rules,
			TokenValues: result.TokenValues,
			Categories:  result.Categories,
		},
		Issues:   issues,
		Warnings: result.Warnings,
	}
}
