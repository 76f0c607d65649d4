package cssgen

import (
	"regexp"
	"strings"
)

// SafeValue replaces any value rejected by Sanitize
const SafeValue = "unset"

// dangerousValue matches value patterns that can execute code or escape the
// style context:
//   - expression(): script execution in legacy engines
//   - javascript: and data:text/html URLs
//   - behavior: and -moz-binding: external component bindings
//   - @import: pulls in foreign stylesheets
//   - </style> and <style>: breaks out of the style element
var dangerousValue = regexp.MustCompile(`(?i)expression\s*\(|javascript\s*:|data\s*:\s*text/html|behavior\s*:|-moz-binding\s*:|@import|<\s*/?\s*style`)

// Sanitize strips NUL bytes from value and returns SafeValue when the result
// matches a dangerous pattern.
func Sanitize(value string) string {
	cleaned := strings.ReplaceAll(value, "\x00", "")
	if dangerousValue.MatchString(cleaned) {
		return SafeValue
	}
	return cleaned
}

// IsDangerous reports whether Sanitize would neutralize value
func IsDangerous(value string) bool {
	return dangerousValue.MatchString(strings.ReplaceAll(value, "\x00", ""))
}
