package cssgen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrMalformedRule is returned for rules a stylesheet refuses to insert
var ErrMalformedRule = errors.New("malformed CSS rule")

// RuleInfo describes a single parsed rule
type RuleInfo struct {
	Prelude      string // ".btn:hover", "@media (min-width:768px)"
	AtRule       string // "@media", "" for style rules
	Declarations int    // declarations across all nested blocks
	Blocks       int    // rule blocks, nested ones included
}

// ParseRule parses exactly one CSS rule.
//
// Anything the parser flags, declarations outside a block, stray tokens and
// more than one top-level rule are reported as ErrMalformedRule.
func ParseRule(rule string) (RuleInfo, error) {
	var info RuleInfo
	if strings.TrimSpace(rule) == "" {
		return info, fmt.Errorf("%w: empty rule", ErrMalformedRule)
	}

	parser := css.NewParser(parse.NewInputString(rule), false)
	depth := 0
	topLevel := 0

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				return info, fmt.Errorf("%w: %v", ErrMalformedRule, parser.Err())
			}
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return info, fmt.Errorf("%w: %v", ErrMalformedRule, err)
			}
			if topLevel != 1 {
				return info, fmt.Errorf("%w: expected one rule, found %d", ErrMalformedRule, topLevel)
			}
			return info, nil

		case css.BeginRulesetGrammar:
			if depth == 0 {
				topLevel++
				info.Prelude = tokensText(parser.Values())
			}
			depth++
			info.Blocks++

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			if depth == 0 {
				topLevel++
				info.AtRule = string(data)
				info.Prelude = strings.TrimSpace(string(data) + " " + tokensText(parser.Values()))
			}
			if gt == css.BeginAtRuleGrammar {
				depth++
				info.Blocks++
			}

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			depth--

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if depth == 0 {
				return info, fmt.Errorf("%w: declaration %q outside of a block", ErrMalformedRule, data)
			}
			info.Declarations++

		case css.TokenGrammar:
			if depth == 0 {
				return info, fmt.Errorf("%w: unexpected token %q", ErrMalformedRule, data)
			}
		}
	}
}

// ValidateRule reports whether rule is a single well-formed CSS rule
func ValidateRule(rule string) error {
	_, err := ParseRule(rule)
	return err
}

// tokensText joins parser tokens back into text
func tokensText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}
