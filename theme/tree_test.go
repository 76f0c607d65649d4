package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeAccessors(t *testing.T) {
	src := map[string]any{
		"colors": map[string]any{"primary": "#4f46e5"},
		"zIndex": map[string]any{"modal": 1000},
	}
	tree := New(src)

	src["colors"].(map[string]any)["primary"] = "changed"
	assert.Equal(t, "#4f46e5", tree.String("colors.primary"), "New copies its input")

	v, ok := tree.Get("zIndex.modal")
	require.True(t, ok)
	assert.Equal(t, 1000, v)

	_, ok = tree.Get("colors.missing")
	assert.False(t, ok)
	_, ok = tree.Get("")
	assert.False(t, ok)
	assert.Equal(t, "", tree.String("colors"), "subtrees have no string form")

	sub, ok := tree.Get("colors")
	require.True(t, ok)
	sub.(map[string]any)["primary"] = "mutated"
	assert.Equal(t, "#4f46e5", tree.String("colors.primary"), "Get hands out copies")

	assert.Equal(t, []string{"colors", "zIndex"}, tree.Categories())
	assert.Equal(t, map[string]any{"colors.primary": "#4f46e5", "zIndex.modal": 1000}, tree.Flatten("."))
}

func TestTreeTypedNestedMaps(t *testing.T) {
	src := map[string]any{
		"colors":  map[string]string{"primary": "#4f46e5"},
		"spacing": map[string]int{"md": 8},
		"shadows": map[string]map[string]string{"card": {"color": "#000"}},
	}
	tree := New(src)

	assert.Equal(t, "#4f46e5", tree.String("colors.primary"))
	assert.Equal(t, "8", tree.String("spacing.md"))
	assert.Equal(t, "#000", tree.String("shadows.card.color"))
	assert.Equal(t, map[string]any{
		"colors.primary":     "#4f46e5",
		"spacing.md":         8,
		"shadows.card.color": "#000",
	}, tree.Flatten("."))

	_, ok := src["colors"].(map[string]string)
	assert.True(t, ok, "input keeps its types")
}

func TestTreeNil(t *testing.T) {
	var tree *Tree
	_, ok := tree.Get("a")
	assert.False(t, ok)
	assert.Empty(t, tree.Raw())
	assert.Empty(t, tree.Categories())

	data, err := tree.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "theme.yaml",
			content: `colors:
  primary: "#2563eb"
spacing:
  md: 8
`,
		},
		{
			name:    "json",
			file:    "theme.json",
			content: `{"colors": {"primary": "#2563eb"}, "spacing": {"md": 8}}`,
		},
		{
			name: "toml",
			file: "theme.toml",
			content: `[colors]
primary = "#2563eb"

[spacing]
md = 8
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			tree, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "#2563eb", tree.String("colors.primary"))
			assert.Equal(t, "8", tree.String("spacing.md"))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	ini := filepath.Join(dir, "theme.ini")
	require.NoError(t, os.WriteFile(ini, []byte("a=1"), 0o644))
	_, err = Load(ini)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "theme.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.json")
}
