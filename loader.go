package cssengine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrEmptyFile is returned for declaration files without a document
var ErrEmptyFile = errors.New("empty declaration file")

// Location is a 1-based position in a declaration file
type Location struct {
	Line   int
	Column int
}

// StyleFile is a parsed declaration file
type StyleFile struct {
	Path      string
	Component string
	Styles    []StyleDecl
	// Lines holds the raw file content for issue reports
	Lines []string
}

// StyleDecl is one named style of a declaration file
type StyleDecl struct {
	Name     string
	Decl     Declaration
	Location Location
	// Values holds the position of every value, keyed by KeyPath
	Values map[string]Location
	// Keys holds the position of every key, keyed by KeyPath
	Keys map[string]Location
}

// KeyPath joins nested declaration keys the way StyleDecl.Values is keyed
func KeyPath(keys ...string) string {
	return strings.Join(keys, " > ")
}

// LoadStyleFiles parses every file, rendering templated values against
// tree. Files that fail are skipped and their errors are combined.
func LoadStyleFiles(paths []string, tree *theme.Tree) ([]*StyleFile, error) {
	var (
		files []*StyleFile
		errs  error
	)
	for _, path := range paths {
		f, err := LoadStyleFile(path, tree)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		files = append(files, f)
	}
	return files, errs
}

// LoadStyleFile reads and parses a single declaration file
func LoadStyleFile(path string, tree *theme.Tree) (*StyleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseStyleFile(path, data, tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseStyleFile parses declaration file content. Mapping order is kept:
// it decides rule order and the static cache key.
//
//	component: Button
//	styles:
//	  root:
//	    display: inline-flex
//	    ":hover": { color: "{{ .colors.primary }}" }
//
// The component defaults to the slug of the file name up to its first dot.
func ParseStyleFile(path string, data []byte, tree *theme.Tree) (*StyleFile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyFile
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", root.Line)
	}

	f := &StyleFile{
		Path:  path,
		Lines: strings.Split(string(data), "\n"),
	}
	p := &declParser{tree: tree}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolveAlias(root.Content[i+1])
		switch key.Value {
		case "component":
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: component must be a string", value.Line)
			}
			f.Component = value.Value
		case "styles":
			styles, err := p.styles(value)
			if err != nil {
				return nil, err
			}
			f.Styles = styles
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}

	if f.Component == "" {
		name, _, _ := strings.Cut(filepath.Base(path), ".")
		f.Component = slug.Make(name)
	}
	return f, nil
}

type declParser struct {
	tree *theme.Tree
}

func (p *declParser) styles(node *yaml.Node) ([]StyleDecl, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: styles must be a mapping", node.Line)
	}

	styles := make([]StyleDecl, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		sd := StyleDecl{
			Name:     key.Value,
			Location: Location{Line: key.Line, Column: key.Column},
			Values:   make(map[string]Location),
			Keys:     make(map[string]Location),
		}
		decl, err := p.declaration(resolveAlias(node.Content[i+1]), nil, &sd)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", key.Value, err)
		}
		sd.Decl = decl
		styles = append(styles, sd)
	}
	return styles, nil
}

func (p *declParser) declaration(node *yaml.Node, path []string, sd *StyleDecl) (Declaration, error) {
	if isNull(node) {
		return Declaration{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	decl := make(Declaration, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		key := keyNode.Value
		value := resolveAlias(node.Content[i+1])
		keys := append(path[:len(path):len(path)], key)
		sd.Keys[KeyPath(keys...)] = Location{Line: keyNode.Line, Column: keyNode.Column}
		sd.Values[KeyPath(keys...)] = Location{Line: value.Line, Column: value.Column}

		var (
			v   any
			err error
		)
		switch value.Kind {
		case yaml.MappingNode:
			v, err = p.declaration(value, keys, sd)
		case yaml.SequenceNode:
			v, err = p.list(value)
		default:
			v, err = p.scalar(value)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		decl = append(decl, Entry{Key: key, Value: v})
	}
	return decl, nil
}

// list joins a sequence of scalars with ", " (font stacks, transitions)
func (p *declParser) list(node *yaml.Node) (any, error) {
	parts := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: list items must be scalars", item.Line)
		}
		v, err := p.scalar(item)
		if err != nil {
			return nil, err
		}
		s, _ := cssgen.ScalarString(v)
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func (p *declParser) scalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int":
		var n int
		err := node.Decode(&n)
		return n, err
	case "!!float":
		var f float64
		err := node.Decode(&f)
		return f, err
	}
	if strings.Contains(node.Value, "{{") {
		return p.render(node)
	}
	return node.Value, nil
}

// render executes a templated value against the theme tokens
func (p *declParser) render(node *yaml.Node) (string, error) {
	if p.tree == nil {
		return "", fmt.Errorf("line %d: %w: value %q references theme tokens", node.Line, ErrNoTheme, node.Value)
	}

	tmpl, err := template.New("value").
		Funcs(sprig.HermeticTxtFuncMap()).
		Funcs(template.FuncMap{"cssvar": CSSVar}).
		Option("missingkey=error").
		Parse(node.Value)
	if err != nil {
		return "", fmt.Errorf("line %d: unable to parse template: %w", node.Line, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, p.tree.Raw()); err != nil {
		return "", fmt.Errorf("line %d: %w", node.Line, err)
	}
	return buf.String(), nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}
