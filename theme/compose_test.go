package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTheme() *Tree {
	return New(map[string]any{
		"colors": map[string]any{
			"primary":    "#4f46e5",
			"onPrimary":  "#ffffff",
			"background": "#ffffff",
			"text":       "#111827",
		},
		"spacing": map[string]any{
			"sm": 4,
			"md": 8,
		},
		"radius": map[string]any{
			"md": "6px",
		},
	})
}

func TestComposeMerge(t *testing.T) {
	c := NewComposer(0, nil)
	base := baseTheme()

	got := c.Compose(base, map[string]any{
		"colors": map[string]any{"primary": "#2563eb"},
	}, ModeMerge)

	assert.Equal(t, "#2563eb", got.String("colors.primary"))
	assert.Equal(t, "#ffffff", got.String("colors.onPrimary"), "unmentioned sibling survives")
	assert.Equal(t, "8", got.String("spacing.md"), "unmentioned category survives")
	assert.Equal(t, "#4f46e5", base.String("colors.primary"), "base is not mutated")
}

func TestComposeMergeTypedNestedMap(t *testing.T) {
	c := NewComposer(0, nil)
	base := New(map[string]any{
		"colors": map[string]any{"primary": "#00f", "text": "#111"},
	})

	got := c.Compose(base, map[string]any{
		"colors": map[string]string{"primary": "#f00"},
	}, ModeMerge)

	assert.Equal(t, "#f00", got.String("colors.primary"))
	assert.Equal(t, "#111", got.String("colors.text"), "partial typed override keeps siblings")

	again := c.Compose(base, map[string]any{
		"colors": map[string]any{"primary": "#f00"},
	}, ModeMerge)
	assert.Same(t, got, again, "typed and untyped overrides share a cache entry")
}

func TestComposeEmptyOverridesEqualsBase(t *testing.T) {
	c := NewComposer(0, nil)
	base := baseTheme()

	for _, overrides := range []map[string]any{nil, {}} {
		got := c.Compose(base, overrides, ModeMerge)
		assert.Equal(t, base.Raw(), got.Raw())
	}
}

func TestComposeNilOverrideKeepsBase(t *testing.T) {
	c := NewComposer(0, nil)
	got := c.Compose(baseTheme(), map[string]any{
		"colors":  map[string]any{"primary": nil},
		"spacing": nil,
	}, ModeMerge)

	assert.Equal(t, "#4f46e5", got.String("colors.primary"))
	assert.Equal(t, "4", got.String("spacing.sm"))
}

func TestComposeReplace(t *testing.T) {
	c := NewComposer(0, nil)
	base := baseTheme()

	got := c.Compose(base, map[string]any{
		"colors": map[string]any{"primary": "#000000"},
	}, ModeReplace)

	assert.Equal(t, "#000000", got.String("colors.primary"))
	_, ok := got.Get("colors.onPrimary")
	assert.False(t, ok, "replaced category keeps no base keys")
	assert.Equal(t, "6px", got.String("radius.md"), "other categories untouched")
}

func TestComposeMemoizesByContent(t *testing.T) {
	c := NewComposer(0, nil)

	a := c.Compose(baseTheme(), map[string]any{"colors": map[string]any{"primary": "red"}}, ModeMerge)
	b := c.Compose(baseTheme(), map[string]any{"colors": map[string]any{"primary": "red"}}, ModeMerge)
	require.Same(t, a, b, "equal inputs return the same tree")

	r := c.Compose(baseTheme(), map[string]any{"colors": map[string]any{"primary": "red"}}, ModeReplace)
	assert.NotSame(t, a, r, "mode is part of the key")
	assert.Equal(t, 2, c.Len())
}

func TestComposeEvictsOldestInserted(t *testing.T) {
	c := NewComposer(2, nil)
	base := baseTheme()
	over := func(v string) map[string]any {
		return map[string]any{"colors": map[string]any{"primary": v}}
	}

	first := c.Compose(base, over("a"), ModeMerge)
	c.Compose(base, over("b"), ModeMerge)
	// a hit does not refresh the entry
	require.Same(t, first, c.Compose(base, over("a"), ModeMerge))
	c.Compose(base, over("c"), ModeMerge)

	assert.Equal(t, 2, c.Len())
	assert.NotSame(t, first, c.Compose(base, over("a"), ModeMerge), "oldest entry was evicted")
	assert.Equal(t, uint64(2), c.Stats().Evictions)
}

func TestComposeOverridesAreCopied(t *testing.T) {
	c := NewComposer(0, nil)
	colors := map[string]any{"primary": "red"}
	got := c.Compose(baseTheme(), map[string]any{"colors": colors}, ModeMerge)

	colors["primary"] = "blue"
	assert.Equal(t, "red", got.String("colors.primary"))
}

func TestMergeAndVariant(t *testing.T) {
	c := NewComposer(0, nil)
	base := baseTheme()

	merged := c.Merge(base,
		map[string]any{"colors": map[string]any{"primary": "red"}},
		map[string]any{"spacing": map[string]any{"lg": 16}},
	)
	assert.Equal(t, "red", merged.String("colors.primary"))
	assert.Equal(t, "16", merged.String("spacing.lg"))
	assert.Equal(t, "4", merged.String("spacing.sm"))

	dark := c.Variant(map[string]any{"colors": map[string]any{"background": "#111111"}})
	assert.Same(t, dark(base), dark(base))
	assert.Equal(t, "#111111", dark(base).String("colors.background"))

	assert.Same(t, base, c.Merge(base))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeMerge},
		{in: "merge", want: ModeMerge},
		{in: "replace", want: ModeReplace},
		{in: "deep", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposerReset(t *testing.T) {
	c := NewComposer(0, nil)
	c.Compose(baseTheme(), nil, ModeMerge)
	require.Equal(t, 1, c.Len())
	c.Reset()
	assert.Equal(t, 0, c.Len())
}
