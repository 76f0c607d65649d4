package cssgen

import (
	"regexp"
	"strings"
	"sync"
)

// maxPropertyNames bounds the property name cache
const maxPropertyNames = 1024

var (
	propertyNamesMu sync.RWMutex
	propertyNames   = map[string]string{
		"backgroundColor": "background-color",
		"borderRadius":    "border-radius",
		"fontSize":        "font-size",
		"fontWeight":      "font-weight",
		"lineHeight":      "line-height",
		"marginTop":       "margin-top",
		"marginBottom":    "margin-bottom",
		"marginLeft":      "margin-left",
		"marginRight":     "margin-right",
		"paddingTop":      "padding-top",
		"paddingBottom":   "padding-bottom",
		"paddingLeft":     "padding-left",
		"paddingRight":    "padding-right",
		"textAlign":       "text-align",
		"justifyContent":  "justify-content",
		"alignItems":      "align-items",
		"flexDirection":   "flex-direction",
		"flexWrap":        "flex-wrap",
		"boxShadow":       "box-shadow",
		"zIndex":          "z-index",
	}

	lowerUpper = regexp.MustCompile(`([a-z])([A-Z])`)
	upperRun   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// PropertyName converts a camelCase property name to its CSS form
// (backgroundColor → background-color). Vendor names keep their leading
// dash (WebkitTransition → -webkit-transition).
func PropertyName(key string) string {
	propertyNamesMu.RLock()
	name, ok := propertyNames[key]
	propertyNamesMu.RUnlock()
	if ok {
		return name
	}

	name = kebabProperty(key)

	propertyNamesMu.Lock()
	if len(propertyNames) < maxPropertyNames {
		propertyNames[key] = name
	}
	propertyNamesMu.Unlock()
	return name
}

// kebabProperty places a dash before every upper-case letter and lowers it
func kebabProperty(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ClassToken converts a PascalCase or camelCase identifier to a kebab-case
// class token (ButtonGroup → button-group, HTMLParser → html-parser).
func ClassToken(name string) string {
	name = lowerUpper.ReplaceAllString(name, "$1-$2")
	name = upperRun.ReplaceAllString(name, "$1-$2")
	return strings.ToLower(name)
}

// CacheKeySuffix turns an argument key into a legal class name suffix.
// Short alphanumeric keys stay readable, short integers are kept verbatim and
// everything else is hashed.
func CacheKeySuffix(key string) string {
	if key != "" && len(key) < 20 {
		first := key[0]
		switch {
		case isASCIILetter(first):
			if allASCII(key[1:], func(c byte) bool { return isASCIILetter(c) || isASCIIDigit(c) }) {
				return ClassToken(key)
			}
		case first == '-' || isASCIIDigit(first):
			if allASCII(key[1:], isASCIIDigit) {
				return key
			}
		}
	}
	return Hash(key)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allASCII(s string, ok func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !ok(s[i]) {
			return false
		}
	}
	return true
}
