package cssengine

import (
	"strings"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// FontFaceOptions describes an @font-face rule
type FontFaceOptions struct {
	Family       string // required
	Src          string // url('/fonts/inter.woff2') format('woff2')
	Style        string // default normal
	Weight       string // default 400
	Display      string // default swap
	UnicodeRange string // optional
}

// FontFace injects an @font-face rule once per distinct rule body and
// returns the font family for use in font-family values.
func (e *Engine) FontFace(opts FontFaceOptions) string {
	if opts.Style == "" {
		opts.Style = "normal"
	}
	if opts.Weight == "" {
		opts.Weight = "400"
	}
	if opts.Display == "" {
		opts.Display = "swap"
	}

	var b strings.Builder
	b.WriteString(`font-family:"` + strings.ReplaceAll(opts.Family, `"`, `\"`) + `";`)
	b.WriteString("src:" + cssgen.Sanitize(opts.Src) + ";")
	b.WriteString("font-style:" + cssgen.Sanitize(opts.Style) + ";")
	b.WriteString("font-weight:" + cssgen.Sanitize(opts.Weight) + ";")
	b.WriteString("font-display:" + cssgen.Sanitize(opts.Display) + ";")
	if opts.UnicodeRange != "" {
		b.WriteString("unicode-range:" + cssgen.Sanitize(opts.UnicodeRange) + ";")
	}
	css := b.String()

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, seen := e.fontFaces[css]; !seen {
		e.insert("@font-face{" + css + "}")
		e.fontFaces[css] = struct{}{}
	}
	return opts.Family
}
