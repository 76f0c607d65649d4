package cssgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    any
		want     string
		ok       bool
	}{
		{name: "string", property: "color", value: "red", want: "red", ok: true},
		{name: "int gets px", property: "width", value: 100, want: "100px", ok: true},
		{name: "float gets px", property: "marginTop", value: 1.5, want: "1.5px", ok: true},
		{name: "unitless camel", property: "opacity", value: 0.5, want: "0.5", ok: true},
		{name: "unitless kebab", property: "z-index", value: 10, want: "10", ok: true},
		{name: "unitless flexGrow", property: "flexGrow", value: 1, want: "1", ok: true},
		{name: "float32", property: "lineHeight", value: float32(1.25), want: "1.25", ok: true},
		{name: "uint", property: "height", value: uint8(4), want: "4px", ok: true},
		{name: "bool", property: "visible", value: true, want: "true", ok: true},
		{name: "dangerous string", property: "background", value: "url(javascript:alert(1))", want: SafeValue, ok: true},
		{name: "nil", property: "color", value: nil, ok: false},
		{name: "nested", property: "color", value: Declaration{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatValue(tt.property, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileRules(t *testing.T) {
	tests := []struct {
		name  string
		decl  Declaration
		class string
		want  []string
	}{
		{
			name:  "numeric units",
			decl:  Declaration{{Key: "width", Value: 100}, {Key: "opacity", Value: 0.5}},
			class: "c",
			want:  []string{".c{width:100px;opacity:0.5;}"},
		},
		{
			name: "pseudo and at-rule dispatch",
			decl: Declaration{
				{Key: "color", Value: "red"},
				{Key: ":hover", Value: Declaration{{Key: "color", Value: "blue"}}},
				{Key: "@media (min-width: 768px)", Value: Declaration{{Key: "color", Value: "green"}}},
			},
			class: "btn",
			want: []string{
				".btn{color:red;}",
				".btn:hover{color:blue;}",
				"@media (min-width: 768px){.btn{color:green;}}",
			},
		},
		{
			name: "base rule first regardless of key order",
			decl: Declaration{
				{Key: "::before", Value: Declaration{{Key: "content", Value: `""`}}},
				{Key: "backgroundColor", Value: "white"},
			},
			class: "card",
			want: []string{
				".card{background-color:white;}",
				`.card::before{content:"";}`,
			},
		},
		{
			name: "complex selector replaces every ampersand",
			decl: Declaration{
				{Key: "& > span, &:focus-within", Value: Declaration{{Key: "gap", Value: 4}}},
			},
			class: "row",
			want:  []string{".row > span, .row:focus-within{gap:4px;}"},
		},
		{
			name: "nil values and empty blocks emit nothing",
			decl: Declaration{
				{Key: "color", Value: nil},
				{Key: ":hover", Value: Declaration{{Key: "color", Value: nil}}},
				{Key: "@supports (display: grid)", Value: Declaration{}},
			},
			class: "x",
			want:  []string{},
		},
		{
			name: "non-declaration nested value is skipped",
			decl: Declaration{
				{Key: "display", Value: "flex"},
				{Key: ":hover", Value: "blue"},
			},
			class: "x",
			want:  []string{".x{display:flex;}"},
		},
		{
			name: "nested blocks only take their own properties",
			decl: Declaration{
				{Key: "@container (min-width: 400px)", Value: Declaration{
					{Key: "padding", Value: 12},
					{Key: ":hover", Value: Declaration{{Key: "color", Value: "red"}}},
				}},
			},
			class: "panel",
			want:  []string{"@container (min-width: 400px){.panel{padding:12px;}}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompileRules(tt.decl, tt.class)
			require.Equal(t, tt.want, got)
			for _, rule := range got {
				assert.NoError(t, ValidateRule(rule), rule)
			}
		})
	}
}

func TestPropertiesCSS(t *testing.T) {
	d := Declaration{
		{Key: "fontSize", Value: 14},
		{Key: "fontWeight", Value: 600},
		{Key: ":hover", Value: Declaration{{Key: "color", Value: "red"}}},
	}
	assert.Equal(t, "font-size:14px;font-weight:600;", PropertiesCSS(d))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want KeyKind
	}{
		{key: "color", want: KindProperty},
		{key: "", want: KindProperty},
		{key: ":hover", want: KindPseudo},
		{key: "::after", want: KindPseudo},
		{key: "& + &", want: KindComplex},
		{key: "@media print", want: KindAtRule},
	}
	for _, tt := range tests {
		t.Run(tt.want.String()+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.key))
		})
	}
}
