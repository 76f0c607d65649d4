package cssengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"button.styles.yaml",
		"forms/input10.styles.yaml",
		"forms/input2.styles.yml",
		"forms/_shared.styles.yaml",
		"notes.yaml",
	} {
		writeFile(t, filepath.Join(dir, name), "styles: {}\n")
	}

	files, stats, err := ScanFiles(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "button.styles.yaml"),
		filepath.Join(dir, "forms/input2.styles.yml"),
		filepath.Join(dir, "forms/input10.styles.yaml"),
	}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 4, FilesScanned: 3, FilesSkipped: 1}, stats)
}

func TestScanFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "card.styles.yaml"), "styles: {}\n")

	files, stats, err := ScanFiles(dir, []string{"*.yaml", "**/*.styles.yaml"})
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, 1, stats.FilesDiscovered)
}

func TestIsPartial(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"styles/_tokens.styles.yaml", true},
		{"_base.yaml", true},
		{"styles/button.styles.yaml", false},
		{"_dir/button.styles.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, isPartial(tt.path))
		})
	}
}
