package cssgen

import (
	"bytes"
	"encoding/json"
)

// Entry is a single key/value pair of a Declaration
type Entry struct {
	Key   string // "backgroundColor", ":hover", "& > span", "@media (min-width: 768px)"
	Value any    // scalar for properties, Declaration for nested blocks
}

// Declaration is an ordered style declaration.
//
// Key order is significant: rules are emitted in key order and the content
// hash used by the static cache depends on it.
type Declaration []Entry

// Get returns the value stored under key
func (d Declaration) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the declaration keys in order
func (d Declaration) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON encodes the declaration as a JSON object preserving key order
func (d Declaration) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// KeyKind classifies a declaration key
type KeyKind int

// Key kinds, decided by the first character of the key
const (
	KindProperty KeyKind = iota // color, backgroundColor
	KindPseudo                  // :hover, ::before
	KindComplex                 // & > span, &:nth-child(2)
	KindAtRule                  // @media, @container, @supports
)

func (k KeyKind) String() string {
	switch k {
	case KindPseudo:
		return "pseudo"
	case KindComplex:
		return "complex"
	case KindAtRule:
		return "at-rule"
	default:
		return "property"
	}
}

// Classify returns the kind of a declaration key
func Classify(key string) KeyKind {
	if key == "" {
		return KindProperty
	}
	switch key[0] {
	case '@':
		return KindAtRule
	case '&':
		return KindComplex
	case ':':
		return KindPseudo
	default:
		return KindProperty
	}
}
