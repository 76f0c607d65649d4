package cssengine

import (
	"fmt"
	"sort"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LintConfig holds linting configuration
type LintConfig struct {
	SourceDir      string
	Includes       []string
	ThemeFile      string
	ThemeOverrides []string
	ThemeMode      theme.Mode
	Verbose        bool
	Strict         bool // Exit with code 1 on warnings too

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (linter) suffix
	UseColors          bool // Force color output

	Logger *zap.Logger
}

func (c LintConfig) report() cssgen.LintConfig {
	return cssgen.LintConfig{
		Verbose:            c.Verbose,
		MaxIssuesPerLinter: c.MaxIssuesPerLinter,
		MaxSameIssues:      c.MaxSameIssues,
		PrintIssuedLines:   c.PrintIssuedLines,
		PrintLinterName:    c.PrintLinterName,
		UseColors:          c.UseColors,
	}
}

// firstSeen remembers the first style compiled from some content
type firstSeen struct {
	ref  string // component.style
	hash string
}

// Lint checks declaration files for values the sanitizer neutralizes,
// rules a stylesheet would reject and styles that only differ in key order.
// Files that fail to load are reported as warnings.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	result := &LintResult{Categories: make(map[PropertyCategory]int)}

	files, stats, err := ScanFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped

	tree, err := LoadTheme(config.ThemeFile, config.ThemeOverrides, config.ThemeMode, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	styleFiles, err := LoadStyleFiles(files, tree)
	for _, e := range multierr.Errors(err) {
		result.Warnings = append(result.Warnings, e.Error())
	}

	l := &linter{seen: make(map[string]firstSeen)}
	for _, f := range styleFiles {
		l.lintFile(f, result)
	}
	result.Issues = l.issues
	result.Components = len(styleFiles)

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = cssgen.LimitIssues(result.Issues, config.report())
	}
	result.ErrorCount, _ = cssgen.CountSeverities(result.Issues)

	log.Debug("Lint finished",
		zap.Int("files", result.FilesScanned),
		zap.Int("issues", len(result.Issues)))
	return result, nil
}

type linter struct {
	issues []Issue
	seen   map[string]firstSeen // key-order-insensitive hash -> first style
}

func (l *linter) lintFile(f *StyleFile, result *LintResult) {
	scope := cssgen.ClassToken(f.Component)
	for _, sd := range f.Styles {
		result.Styles++
		result.TokenValues += cssgen.CountCategories(sd.Decl, result.Categories)

		l.checkValues(f, sd, sd.Decl, nil)

		class := scope + "-" + cssgen.ClassToken(sd.Name)
		for _, rule := range cssgen.CompileRules(sd.Decl, class) {
			result.Rules++
			if err := cssgen.ValidateRule(rule); err != nil {
				l.add(f, sd.Location, cssgen.LinterSyntax, SeverityError,
					fmt.Sprintf(cssgen.IssueMalformedRule, rule, err))
			}
		}

		l.checkOrder(f, sd)
	}
}

// checkValues reports scalar values the sanitizer replaces and keys it
// never sees: selectors, pseudos and at-rules reach the stylesheet as written.
func (l *linter) checkValues(f *StyleFile, sd StyleDecl, decl Declaration, path []string) {
	for _, e := range decl {
		keys := append(path[:len(path):len(path)], e.Key)
		if cssgen.IsDangerous(e.Key) {
			loc, ok := sd.Keys[KeyPath(keys...)]
			if !ok {
				loc = sd.Location
			}
			l.add(f, loc, cssgen.LinterSanitize, SeverityError,
				fmt.Sprintf(cssgen.IssueDangerousKey, KeyPath(keys...)))
		}
		if nested, ok := e.Value.(Declaration); ok {
			l.checkValues(f, sd, nested, keys)
			continue
		}
		s, ok := e.Value.(string)
		if !ok || !cssgen.IsDangerous(s) {
			continue
		}
		loc, ok := sd.Values[KeyPath(keys...)]
		if !ok {
			loc = sd.Location
		}
		l.add(f, loc, cssgen.LinterSanitize, SeverityWarning,
			fmt.Sprintf(cssgen.IssueNeutralized, KeyPath(keys...)))
	}
}

// checkOrder reports styles whose content was seen before in another key
// order: the static cache keys on order, so they compile to a second class.
func (l *linter) checkOrder(f *StyleFile, sd StyleDecl) {
	ref := f.Component + "." + sd.Name
	exact := cssgen.HashDeclaration(sd.Decl)
	canonical := cssgen.HashDeclaration(sortedDeclaration(sd.Decl))

	first, ok := l.seen[canonical]
	if !ok {
		l.seen[canonical] = firstSeen{ref: ref, hash: exact}
		return
	}
	if first.hash != exact {
		l.add(f, sd.Location, cssgen.LinterOrder, SeverityInfo,
			fmt.Sprintf(cssgen.IssueKeyOrder, ref, first.ref))
	}
}

func (l *linter) add(f *StyleFile, loc Location, linter, severity, text string) {
	issue := Issue{
		FromLinter: linter,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: GetRelativePath(f.Path),
			Line:     loc.Line,
			Column:   loc.Column,
		},
	}
	if loc.Line > 0 && loc.Line <= len(f.Lines) {
		issue.SourceLines = []string{f.Lines[loc.Line-1]}
	}
	l.issues = append(l.issues, issue)
}

// sortedDeclaration returns a copy of d with keys sorted at every level
func sortedDeclaration(d Declaration) Declaration {
	out := make(Declaration, len(d))
	for i, e := range d {
		if nested, ok := e.Value.(Declaration); ok {
			e.Value = sortedDeclaration(nested)
		}
		out[i] = e
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
