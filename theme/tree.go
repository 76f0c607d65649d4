// Package theme holds immutable design token trees.
//
// A Tree is a nested map of categories to tokens (colors.primary,
// spacing.md, ...). Trees are never mutated after construction: New copies
// its input and every accessor that hands out a nested map hands out a copy.
// Composer derives new trees from a base and partial overrides and memoizes
// the results so identical inputs yield the same *Tree.
package theme

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/knadh/koanf/maps"
)

// Tree is an immutable design token tree
type Tree struct {
	root map[string]any
}

// New builds a tree from a deep copy of m
func New(m map[string]any) *Tree {
	if m == nil {
		return &Tree{root: map[string]any{}}
	}
	root := maps.Copy(m)
	maps.IntfaceKeysToStrings(root)
	normalizeMaps(root)
	return &Tree{root: root}
}

// normalizeMaps rewrites nested maps of any string-keyed type, such as
// map[string]string, to map[string]any in place so that merging and path
// lookups descend into them.
func normalizeMaps(m map[string]any) {
	for k, v := range m {
		if sub, ok := asTree(v); ok {
			m[k] = sub
		}
	}
}

func asTree(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		normalizeMaps(m)
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	switch rv.Type().Key().Kind() {
	case reflect.String, reflect.Interface:
	default:
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	normalizeMaps(out)
	return out, true
}

// Get returns the value at a dot separated path (colors.primary). Nested
// maps are returned as copies.
func (t *Tree) Get(path string) (any, bool) {
	if t == nil || path == "" {
		return nil, false
	}
	v := maps.Search(t.root, strings.Split(path, "."))
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return maps.Copy(m), true
	}
	return v, true
}

// String returns the scalar at path rendered as text, or "" when the path
// is missing or names a subtree.
func (t *Tree) String(path string) string {
	v, ok := t.Get(path)
	if !ok {
		return ""
	}
	if _, isMap := v.(map[string]any); isMap {
		return ""
	}
	return fmt.Sprint(v)
}

// Raw returns a deep copy of the underlying map
func (t *Tree) Raw() map[string]any {
	if t == nil {
		return map[string]any{}
	}
	return maps.Copy(t.root)
}

// Flatten returns every leaf keyed by its path joined with delim
func (t *Tree) Flatten(delim string) map[string]any {
	if t == nil {
		return map[string]any{}
	}
	out, _ := maps.Flatten(t.root, nil, delim)
	return out
}

// Categories returns the sorted top-level keys
func (t *Tree) Categories() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.root))
	for k := range t.root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes the tree with sorted keys
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(t.root)
}
