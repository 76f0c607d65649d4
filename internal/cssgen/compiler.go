package cssgen

import (
	"reflect"
	"strconv"
	"strings"
)

// unitless lists properties whose numeric values are emitted without "px"
var unitless = map[string]bool{
	"animationIterationCount": true,
	"columnCount":             true,
	"fillOpacity":             true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// unitlessCSS holds the same properties under their CSS names
var unitlessCSS = func() map[string]bool {
	m := make(map[string]bool, len(unitless))
	for name := range unitless {
		m[kebabProperty(name)] = true
	}
	return m
}()

// IsUnitless reports whether numeric values of property take no unit.
// Both camelCase and CSS names are accepted.
func IsUnitless(property string) bool {
	return unitless[property] || unitlessCSS[property]
}

// FormatNumber renders any Go integer or float kind, reporting false for
// other values.
func FormatNumber(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// ScalarString renders strings, booleans and numbers (named types included),
// reporting false for anything else.
func ScalarString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return FormatNumber(v)
}

// isNumber reports whether v is of a numeric kind
func isNumber(v any) bool {
	_, ok := FormatNumber(v)
	return ok
}

// FormatValue renders a scalar property value. Numbers get a "px" suffix
// unless the property is unit-less; everything is sanitized.
func FormatValue(property string, v any) (string, bool) {
	s, ok := ScalarString(v)
	if !ok {
		return "", false
	}
	if isNumber(v) && !IsUnitless(property) {
		return s + "px", true
	}
	return Sanitize(s), true
}

// PropertiesCSS renders the scalar properties of d as "prop:value;" pairs.
// Nil and nested values are skipped.
func PropertiesCSS(d Declaration) string {
	var b strings.Builder
	writeProperties(&b, d)
	return b.String()
}

func writeProperties(b *strings.Builder, d Declaration) {
	for _, e := range d {
		if Classify(e.Key) == KindProperty {
			writeProperty(b, e.Key, e.Value)
		}
	}
}

func writeProperty(b *strings.Builder, key string, v any) {
	value, ok := FormatValue(key, v)
	if !ok {
		return
	}
	b.WriteString(PropertyName(key))
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte(';')
}

// CompileRules turns one declaration into CSS rules for class.
//
// The base rule comes first when it has any properties; every pseudo,
// complex-selector and at-rule key then adds one rule in key order. Nested
// blocks with no properties emit nothing.
func CompileRules(d Declaration, class string) []string {
	selector := "." + class

	var base strings.Builder
	var special []string

	for _, e := range d {
		kind := Classify(e.Key)
		if kind == KindProperty {
			writeProperty(&base, e.Key, e.Value)
			continue
		}

		nested, ok := e.Value.(Declaration)
		if !ok {
			continue
		}
		inner := PropertiesCSS(nested)
		if inner == "" {
			continue
		}

		switch kind {
		case KindAtRule:
			special = append(special, e.Key+"{"+selector+"{"+inner+"}}")
		case KindComplex:
			special = append(special, strings.ReplaceAll(e.Key, "&", selector)+"{"+inner+"}")
		case KindPseudo:
			special = append(special, selector+e.Key+"{"+inner+"}")
		}
	}

	rules := make([]string, 0, len(special)+1)
	if base.Len() > 0 {
		rules = append(rules, selector+"{"+base.String()+"}")
	}
	return append(rules, special...)
}
