package cssgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
)

const hashSeed uint32 = 5381

// Hash returns the base-36 djb2-xor hash of s.
//
// The hash runs over UTF-16 code units so names stay stable for identifiers
// produced by other tooling from the same input.
func Hash(s string) string {
	h := hashSeed
	for _, r := range s {
		if r < 0x10000 {
			h = h*33 ^ uint32(r)
			continue
		}
		r1, r2 := utf16.EncodeRune(r)
		h = h*33 ^ uint32(r1)
		h = h*33 ^ uint32(r2)
	}
	return strconv.FormatUint(uint64(h), 36)
}

// HashDeclaration hashes the ordered serialization of d
func HashDeclaration(d Declaration) string {
	return Hash(serialize(d))
}

// serialize renders v as compact JSON, falling back to the Go syntax
// representation for values JSON cannot encode.
func serialize(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}
