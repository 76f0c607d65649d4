package cssgen

import "strings"

// maxFastArgs is the largest argument list keyed by concatenation
const maxFastArgs = 4

// nilArg stands in for a nil argument in a key
const nilArg = "n"

// ArgsKey derives the cache key of a generator call.
//
// Up to four scalar arguments are joined with "|" (nil becomes "n"). Longer
// lists, or any non-scalar argument, fall back to the JSON serialization of
// the whole list.
func ArgsKey(args ...any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		if s, ok := scalarKey(args[0]); ok {
			return s
		}
		return serialize(args)
	}

	if len(args) > maxFastArgs {
		return serialize(args)
	}

	var b strings.Builder
	for i, arg := range args {
		s, ok := scalarKey(arg)
		if !ok {
			return serialize(args)
		}
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(s)
	}
	return b.String()
}

// scalarKey renders a scalar argument, reporting false for anything else
func scalarKey(arg any) (string, bool) {
	if arg == nil {
		return nilArg, true
	}
	return ScalarString(arg)
}
