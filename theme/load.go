package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/maps"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for theme files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported theme format")

// Load reads a theme tree from a .yaml, .yml, .json or .toml file
func Load(path string) (*Tree, error) {
	m, err := LoadMap(path)
	if err != nil {
		return nil, err
	}
	return &Tree{root: m}, nil
}

// LoadMap reads a token map, typically a set of overrides, from path
func LoadMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	m, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FormatOf maps a file extension to a format name understood by Parse
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Parse decodes a token map in the given format (yaml, json or toml)
func Parse(data []byte, format string) (map[string]any, error) {
	m := map[string]any{}

	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &m)
	case "json":
		err = json.Unmarshal(data, &m)
	case "toml":
		err = toml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s theme: %w", format, err)
	}

	if m == nil {
		m = map[string]any{}
	}
	maps.IntfaceKeysToStrings(m)
	return m, nil
}
