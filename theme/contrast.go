package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Level is a WCAG conformance level
type Level string

// WCAG levels
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// required returns the minimum contrast ratio for normal and large text
func (l Level) required() (normal, large float64) {
	if l == LevelAAA {
		return 7, 4.5
	}
	return 4.5, 3
}

// ContrastResult holds the ratio of a color pair and the levels it passes
type ContrastResult struct {
	Foreground     string  `json:"foreground"`
	Background     string  `json:"background"`
	Ratio          float64 `json:"ratio"`
	PassesAA       bool    `json:"passes_aa"`
	PassesAALarge  bool    `json:"passes_aa_large"`
	PassesAAA      bool    `json:"passes_aaa"`
	PassesAAALarge bool    `json:"passes_aaa_large"`
}

// ContrastIssue is a theme color pair below the required ratio
type ContrastIssue struct {
	Pair       string  `json:"pair"`       // "primary/onPrimary"
	Foreground string  `json:"foreground"` // token name under colors
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Required   float64 `json:"required"`
	Level      Level   `json:"level"`
	FailsLarge bool    `json:"fails_large"` // below the large text minimum too
}

// colorPairs lists foreground/background tokens under "colors" that are
// rendered on top of each other.
var colorPairs = [][2]string{
	{"onPrimary", "primary"},
	{"text", "primarySubtle"},
	{"onSecondary", "secondary"},
	{"text", "secondarySubtle"},
	{"onTertiary", "tertiary"},
	{"text", "tertiarySubtle"},
	{"onAccent", "accent"},
	{"text", "accentSubtle"},
	{"text", "background"},
	{"text", "surface"},
	{"textSecondary", "surface"},
	{"textTertiary", "surface"},
	{"onSuccess", "success"},
	{"text", "successSubtle"},
	{"onWarning", "warning"},
	{"text", "warningSubtle"},
	{"onError", "error"},
	{"text", "errorSubtle"},
	{"onInfo", "info"},
	{"text", "infoSubtle"},
	{"link", "surface"},
	{"link", "background"},
}

// ParseColor parses #rgb or #rrggbb, with or without the leading #
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("color %q is not a hex color", s)
	}
	return colorful.Hex(s)
}

// luminance is the WCAG relative luminance of c
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ratio(fg, bg colorful.Color) float64 {
	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ContrastRatio returns the WCAG contrast ratio of two hex colors
func ContrastRatio(fg, bg string) (float64, error) {
	f, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	return ratio(f, b), nil
}

// MeetsWCAG reports whether the pair passes level. Unparseable colors fail.
func MeetsWCAG(fg, bg string, level Level, large bool) bool {
	r, err := ContrastRatio(fg, bg)
	if err != nil {
		return false
	}
	normal, largeMin := level.required()
	if large {
		return r >= largeMin
	}
	return r >= normal
}

// CheckContrast reports the ratio of a pair, rounded to two decimals, and
// the levels it passes
func CheckContrast(fg, bg string) (ContrastResult, error) {
	r, err := ContrastRatio(fg, bg)
	if err != nil {
		return ContrastResult{}, err
	}
	return ContrastResult{
		Foreground:     fg,
		Background:     bg,
		Ratio:          round2(r),
		PassesAA:       r >= 4.5,
		PassesAALarge:  r >= 3,
		PassesAAA:      r >= 7,
		PassesAAALarge: r >= 4.5,
	}, nil
}

// CheckThemeContrast checks the known color pairs of t against level.
// Pairs with a missing or non-hex color are skipped.
func CheckThemeContrast(t *Tree, level Level) []ContrastIssue {
	normal, large := level.required()

	var issues []ContrastIssue
	for _, pair := range colorPairs {
		fg := t.String("colors." + pair[0])
		bg := t.String("colors." + pair[1])
		if !strings.HasPrefix(fg, "#") || !strings.HasPrefix(bg, "#") {
			continue
		}
		r, err := ContrastRatio(fg, bg)
		if err != nil || r >= normal {
			continue
		}
		issues = append(issues, ContrastIssue{
			Pair:       pair[1] + "/" + pair[0],
			Foreground: pair[0],
			Background: pair[1],
			Ratio:      round2(r),
			Required:   normal,
			Level:      level,
			FailsLarge: r < large,
		})
	}
	return issues
}

// SuggestContrastColor darkens (light background) or lightens (dark
// background) fg in 5% steps until it reaches target against bg. It reports
// false when no step does.
func SuggestContrastColor(fg, bg string, target float64) (string, bool) {
	f, err := ParseColor(fg)
	if err != nil {
		return "", false
	}
	b, err := ParseColor(bg)
	if err != nil {
		return "", false
	}

	lightBackground := luminance(b) > 0.5
	for i := 0; i <= 100; i += 5 {
		factor := float64(100+i) / 100
		if lightBackground {
			factor = float64(100-i) / 100
		}
		candidate := colorful.Color{R: f.R * factor, G: f.G * factor, B: f.B * factor}.Clamped()
		// round through hex so the reported color is the one measured
		hex := candidate.Hex()
		c, _ := colorful.Hex(hex)
		if ratio(c, b) >= target {
			return hex, true
		}
	}
	return "", false
}
