package cssengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssengine/theme"
)

func variantStyle(args ...any) Declaration {
	color := "gray"
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			color = s
		}
	}
	return Declaration{{Key: "color", Value: color}}
}

func TestCreateStyles(t *testing.T) {
	e := New(Config{})

	classes := e.CreateStyles("ButtonGroup",
		Static("root", Declaration{{Key: "display", Value: "inline-flex"}}),
		Static("iconLeft", Declaration{{Key: "marginRight", Value: 4}}),
		Dynamic("variant", variantStyle),
	)

	assert.Equal(t, "button-group", classes.Component())
	assert.Equal(t, []string{"root", "iconLeft", "variant"}, classes.Names())
	assert.Equal(t, "button-group-root", classes.Get("root"))
	assert.Equal(t, "button-group-icon-left", classes.Get("iconLeft"))
	assert.Equal(t, "", classes.Get("missing"))

	variant := classes.Func("variant")
	assert.Equal(t, "button-group-variant-primary", variant("primary"))
	assert.Equal(t, "button-group-variant-"+Hash("primary|lg"), variant("primary", "lg"))
	assert.Equal(t, "button-group-root", classes.Func("root")("ignored"))

	assert.Contains(t, e.Rules(), ".button-group-variant-primary{color:primary;}")
}

func TestCreateStylesDefaultComponent(t *testing.T) {
	e := New(Config{})
	classes := e.CreateStyles("", Static("root", Declaration{{Key: "color", Value: "red"}}))
	assert.Equal(t, "style-root", classes.Get("root"))
}

func TestCreateStylesSharesStaticContent(t *testing.T) {
	e := New(Config{})
	decl := Declaration{{Key: "padding", Value: 8}}

	a := e.CreateStyles("Card", Static("body", decl))
	b := e.CreateStyles("Panel", Static("body", Declaration{{Key: "padding", Value: 8}}))

	assert.Equal(t, "card-body", a.Get("body"))
	assert.Equal(t, "card-body", b.Get("body"), "identical content reuses the class")
	assert.Len(t, e.Rules(), 1)
}

func TestGeneratorCache(t *testing.T) {
	e := New(Config{GeneratorCacheSize: 2})

	calls := 0
	classes := e.CreateStyles("Badge", Dynamic("tone", func(args ...any) Declaration {
		calls++
		return variantStyle(args...)
	}))
	tone := classes.Func("tone")

	assert.Equal(t, "badge-tone-red", tone("red"))
	assert.Equal(t, "badge-tone-red", tone("red"))
	assert.Equal(t, 1, calls, "a hit does not call the generator")

	tone("green")
	tone("red") // promote red
	tone("blue")

	g, ok := classes.Generator("tone")
	require.True(t, ok)
	assert.Equal(t, []string{"red", "blue"}, g.CacheKeys(), "green was least recently used")
	assert.Equal(t, uint64(1), g.CacheStats().Evictions)

	// recomputing an evicted key allocates a fresh class
	assert.Equal(t, "badge-tone-green-2", tone("green"))
}

func TestGeneratorCacheSurvivesReset(t *testing.T) {
	e := New(Config{})
	classes := e.CreateStyles("Badge", Dynamic("tone", variantStyle))
	require.Equal(t, "badge-tone-red", classes.Func("tone")("red"))

	e.Reset()

	assert.Equal(t, "badge-tone-red", classes.Func("tone")("red"))
	assert.Equal(t, "", e.Drain(), "cached generator classes are not re-injected")
}

func TestGeneratorBoundTwiceKeepsFirstBinding(t *testing.T) {
	e := New(Config{})
	tone := NewGenerator("tone", variantStyle)

	badge := e.CreateStyles("Badge", Style{Name: "tone", Gen: tone})
	require.Equal(t, "badge-tone-red", badge.Func("tone")("red"))

	chip := e.CreateStyles("Chip", Style{Name: "tone", Gen: tone})
	assert.Equal(t, "chip-tone-red", chip.Func("tone")("red"))
	assert.Equal(t, "badge-tone-red", badge.Func("tone")("red"), "first classes keep their base")

	g, ok := chip.Generator("tone")
	require.True(t, ok)
	assert.NotSame(t, tone, g)
	assert.Equal(t, []string{"red"}, tone.CacheKeys(), "first cache is not reset")
	assert.Equal(t, uint64(1), tone.CacheStats().Hits)

	same := e.CreateStyles("Badge", Style{Name: "tone", Gen: tone})
	g, _ = same.Generator("tone")
	assert.Same(t, tone, g, "rebinding to the same base is a no-op")
}

func TestUnboundGenerator(t *testing.T) {
	g := NewGenerator("tone", variantStyle)
	assert.Equal(t, "tone", g.Name())
	assert.Equal(t, "", g.Class("red"))
	assert.Empty(t, g.CacheKeys())
}

func TestThemedStyles(t *testing.T) {
	e := New(Config{})
	composer := theme.NewComposer(0, nil)

	light := theme.New(map[string]any{"colors": map[string]any{"primary": "#2563eb"}})
	active := light

	calls := 0
	themed := e.CreateThemedStyles("Button", func(th *theme.Tree) []Style {
		calls++
		return []Style{Static("root", Declaration{{Key: "color", Value: th.String("colors.primary")}})}
	})

	_, err := themed.Resolve()
	require.ErrorIs(t, err, ErrNoTheme)
	assert.Contains(t, err.Error(), "Button")

	prev := e.SetThemeGetter(func() *theme.Tree { return active })
	assert.Nil(t, prev)

	first, err := themed.Resolve()
	require.NoError(t, err)
	second, err := themed.Resolve()
	require.NoError(t, err)
	assert.Same(t, first, second, "same theme, cached classes")
	assert.Equal(t, 1, calls)
	assert.Equal(t, "button-root", first.Get("root"))

	active = composer.Compose(light, map[string]any{"colors": map[string]any{"primary": "#dc2626"}}, theme.ModeMerge)
	dark, err := themed.Resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, dark)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "button-root-2", dark.Get("root"))

	assert.Equal(t, []string{
		".button-root{color:#2563eb;}",
		".button-root-2{color:#dc2626;}",
	}, e.Rules())
}

func TestThemeGetterReturningNil(t *testing.T) {
	e := New(Config{ThemeGetter: func() *theme.Tree { return nil }})
	themed := e.CreateThemedStyles("Card", func(*theme.Tree) []Style { return nil })

	_, err := themed.Resolve()
	assert.ErrorIs(t, err, ErrNoTheme)
}
