package cssengine

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
)

// DefaultVarPrefix prefixes theme variables when no prefix is given
const DefaultVarPrefix = "theme"

// CSSVar references a theme variable by token path:
// CSSVar("colors.primary", "") is var(--theme-colors-primary).
func CSSVar(path, fallback string) string {
	name := "--" + DefaultVarPrefix + "-" + strings.ReplaceAll(path, ".", "-")
	if fallback != "" {
		return "var(" + name + ", " + fallback + ")"
	}
	return "var(" + name + ")"
}

// VariablesCSS renders every leaf of tree as a custom property inside
// :root. Names are the kebab-cased token path under prefix, in natural
// order. It returns "" for an empty tree.
func VariablesCSS(tree *theme.Tree, prefix string) string {
	if prefix == "" {
		prefix = DefaultVarPrefix
	}

	leaves := tree.Flatten(".")
	names := make([]string, 0, len(leaves))
	values := make(map[string]string, len(leaves))
	for path, v := range leaves {
		s, ok := cssgen.ScalarString(v)
		if !ok {
			continue
		}
		name := varName(prefix, strings.Split(path, "."))
		names = append(names, name)
		values[name] = cssgen.Sanitize(s)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Sort(natural.StringSlice(names))

	var b strings.Builder
	b.WriteString(":root{")
	for _, name := range names {
		b.WriteString(name + ":" + values[name] + ";")
	}
	b.WriteString("}")
	return b.String()
}

func varName(prefix string, path []string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, prefix)
	for _, p := range path {
		parts = append(parts, cssgen.PropertyName(p))
	}
	return "--" + strings.Join(parts, "-")
}

// InjectVariables injects the custom properties of tree into :root
func (e *Engine) InjectVariables(tree *theme.Tree, prefix string) {
	if css := VariablesCSS(tree, prefix); css != "" {
		e.Insert(css)
	}
}

// Variables maps each key of vars to a var() reference of its custom
// property (--<prefix>-<key> in kebab case, or --<key> without prefix).
// With inject, the properties and their values are injected into :root.
func (e *Engine) Variables(vars Declaration, prefix string, inject bool) map[string]string {
	refs := make(map[string]string, len(vars))
	var css strings.Builder
	for _, entry := range vars {
		name := "--" + cssgen.PropertyName(entry.Key)
		if prefix != "" {
			name = "--" + prefix + "-" + cssgen.PropertyName(entry.Key)
		}
		refs[entry.Key] = "var(" + name + ")"

		if !inject {
			continue
		}
		if s, ok := cssgen.ScalarString(entry.Value); ok {
			css.WriteString(name + ":" + cssgen.Sanitize(s) + ";")
		}
	}
	if inject && css.Len() > 0 {
		e.Insert(":root{" + css.String() + "}")
	}
	return refs
}
