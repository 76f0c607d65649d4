package cssengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssengine/theme"
)

func fade() Declaration {
	return Declaration{
		{Key: "from", Value: Declaration{{Key: "opacity", Value: 0}}},
		{Key: "to", Value: Declaration{{Key: "opacity", Value: 1}}},
	}
}

func TestKeyframes(t *testing.T) {
	e := New(Config{})

	name := e.Keyframes(fade())
	require.Equal(t, "cssengine-kf-1", name)
	assert.Equal(t, "cssengine-kf-1", e.Keyframes(fade()), "same body keeps its name")

	slide := e.Keyframes(Declaration{
		{Key: "0%", Value: Declaration{{Key: "marginLeft", Value: -10}}},
		{Key: "100%", Value: Declaration{{Key: "marginLeft", Value: 0}}},
	})
	assert.Equal(t, "cssengine-kf-2", slide)

	assert.Equal(t, []string{
		"@keyframes cssengine-kf-1{from{opacity:0;}to{opacity:1;}}",
		"@keyframes cssengine-kf-2{0%{margin-left:-10px;}100%{margin-left:0px;}}",
	}, e.Rules())
}

func TestKeyframesPrefix(t *testing.T) {
	e := New(Config{Prefix: "app"})
	assert.Equal(t, "app-kf-1", e.Keyframes(fade()))
}

func TestFontFace(t *testing.T) {
	e := New(Config{})
	opts := FontFaceOptions{Family: "Inter", Src: "url(/fonts/inter.woff2) format('woff2')"}

	assert.Equal(t, "Inter", e.FontFace(opts))
	assert.Equal(t, "Inter", e.FontFace(opts))

	require.Len(t, e.Rules(), 1, "identical font faces are injected once")
	assert.Equal(t,
		`@font-face{font-family:"Inter";src:url(/fonts/inter.woff2) format('woff2');font-style:normal;font-weight:400;font-display:swap;}`,
		e.Rules()[0])

	opts.Weight = "700"
	opts.UnicodeRange = "U+0000-00FF"
	e.FontFace(opts)
	require.Len(t, e.Rules(), 2)
	assert.Contains(t, e.Rules()[1], "font-weight:700;font-display:swap;unicode-range:U+0000-00FF;")
}

func TestCSSVar(t *testing.T) {
	assert.Equal(t, "var(--theme-colors-primary)", CSSVar("colors.primary", ""))
	assert.Equal(t, "var(--theme-spacing-md, 8px)", CSSVar("spacing.md", "8px"))
}

func TestVariablesCSS(t *testing.T) {
	tree := theme.New(map[string]any{
		"colors":  map[string]any{"primaryHover": "#1d4ed8", "text": "#111827"},
		"spacing": map[string]any{"2": "8px", "10": "40px"},
		"zIndex":  map[string]any{"modal": 1000},
	})

	assert.Equal(t,
		":root{--theme-colors-primary-hover:#1d4ed8;--theme-colors-text:#111827;--theme-spacing-2:8px;--theme-spacing-10:40px;--theme-z-index-modal:1000;}",
		VariablesCSS(tree, ""))
	assert.Equal(t, "", VariablesCSS(theme.New(nil), "x"))
}

func TestInjectVariables(t *testing.T) {
	e := New(Config{})
	e.InjectVariables(theme.New(map[string]any{"radius": map[string]any{"md": "6px"}}), "ui")
	e.InjectVariables(theme.New(nil), "ui")

	assert.Equal(t, []string{":root{--ui-radius-md:6px;}"}, e.Rules())
}

func TestVariables(t *testing.T) {
	e := New(Config{})

	refs := e.Variables(Declaration{
		{Key: "primaryColor", Value: "#007bff"},
		{Key: "spacing", Value: "1rem"},
	}, "", false)
	assert.Equal(t, map[string]string{
		"primaryColor": "var(--primary-color)",
		"spacing":      "var(--spacing)",
	}, refs)
	assert.Empty(t, e.Rules())

	refs = e.Variables(Declaration{{Key: "gap", Value: 4}}, "app", true)
	assert.Equal(t, "var(--app-gap)", refs["gap"])
	assert.Equal(t, []string{":root{--app-gap:4;}"}, e.Rules())
}
