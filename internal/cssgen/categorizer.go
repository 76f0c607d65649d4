package cssgen

import "strings"

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryCustom     PropertyCategory = "Custom"
	CategoryVendor     PropertyCategory = "Vendor"
)

// Categories lists every category in report order
var Categories = []PropertyCategory{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryCustom,
	CategoryVendor,
}

// propertyCategories holds the names prefix rules do not settle
var propertyCategories = map[string]PropertyCategory{
	"color":           CategoryVisual,
	"background":      CategoryVisual,
	"box-shadow":      CategoryVisual,
	"opacity":         CategoryVisual,
	"outline":         CategoryVisual,
	"fill":            CategoryVisual,
	"stroke":          CategoryVisual,
	"cursor":          CategoryVisual,
	"visibility":      CategoryVisual,
	"filter":          CategoryEffects,
	"backdrop-filter": CategoryEffects,
	"mix-blend-mode":  CategoryEffects,
	"clip-path":       CategoryEffects,
	"mask":            CategoryEffects,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,
	"word-wrap":       CategoryTypography,
	"hyphens":         CategoryTypography,
}

// categoryPrefixes are checked in order after exact names
var categoryPrefixes = []struct {
	prefix   string
	category PropertyCategory
}{
	{"--", CategoryCustom},
	{"-webkit-", CategoryVendor},
	{"-moz-", CategoryVendor},
	{"-ms-", CategoryVendor},
	{"-o-", CategoryVendor},
	{"background-", CategoryVisual},
	{"border", CategoryVisual},
	{"outline-", CategoryVisual},
	{"font", CategoryTypography},
	{"text-", CategoryTypography},
	{"transition", CategoryEffects},
	{"transform", CategoryEffects},
	{"animation", CategoryEffects},
}

// CategorizeProperty determines the category of a CSS property name.
// Unknown properties count as layout.
func CategorizeProperty(name string) PropertyCategory {
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryLayout
}

// IsTokenValue reports whether a value references a CSS variable
func IsTokenValue(value string) bool {
	return strings.Contains(value, "var(--")
}

// CountCategories adds the properties of d, nested blocks included, to
// counts and returns how many of their values reference CSS variables.
func CountCategories(d Declaration, counts map[PropertyCategory]int) int {
	tokens := 0
	for _, e := range d {
		if nested, ok := e.Value.(Declaration); ok {
			tokens += CountCategories(nested, counts)
			continue
		}
		if Classify(e.Key) != KindProperty || e.Value == nil {
			continue
		}
		counts[CategorizeProperty(PropertyName(e.Key))]++
		if s, ok := e.Value.(string); ok && IsTokenValue(s) {
			tokens++
		}
	}
	return tokens
}
