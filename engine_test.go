package cssengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buttonDecl() Declaration {
	return Declaration{
		{Key: "color", Value: "red"},
		{Key: ":hover", Value: Declaration{{Key: "color", Value: "blue"}}},
		{Key: "@media (min-width: 768px)", Value: Declaration{{Key: "color", Value: "green"}}},
	}
}

func TestCompileDispatch(t *testing.T) {
	e := New(Config{})

	class := e.Compile(buttonDecl(), "btn", false)
	require.Equal(t, "btn", class)
	assert.Equal(t, []string{
		".btn{color:red;}",
		".btn:hover{color:blue;}",
		"@media (min-width: 768px){.btn{color:green;}}",
	}, e.Rules())
}

func TestCompileNumericUnits(t *testing.T) {
	e := New(Config{})
	e.Compile(Declaration{{Key: "width", Value: 100}, {Key: "opacity", Value: 0.5}}, "box", false)
	assert.Equal(t, ".box{width:100px;opacity:0.5;}", e.Drain())
}

func TestCompileStaticCache(t *testing.T) {
	e := New(Config{})

	first := e.Compile(buttonDecl(), "btn", true)
	second := e.Compile(buttonDecl(), "btn", true)
	other := e.Compile(buttonDecl(), "link", true)

	assert.Equal(t, first, second, "same content, same class")
	assert.Equal(t, first, other, "content wins over the call site")
	assert.Len(t, e.Rules(), 3, "a cache hit injects nothing")

	stats := e.Stats()
	assert.Equal(t, 1, stats.Compiled)
	assert.Equal(t, 2, stats.StaticHits)
}

func TestCompileStaticCacheIsKeyOrderSensitive(t *testing.T) {
	e := New(Config{})

	a := e.Compile(Declaration{{Key: "color", Value: "red"}, {Key: "padding", Value: 8}}, "box", true)
	b := e.Compile(Declaration{{Key: "padding", Value: 8}, {Key: "color", Value: "red"}}, "box", true)

	assert.Equal(t, "box", a)
	assert.Equal(t, "box-2", b)
}

func TestCompileWithoutCacheAllocatesEachTime(t *testing.T) {
	e := New(Config{})
	assert.Equal(t, "btn", e.Compile(buttonDecl(), "btn", false))
	assert.Equal(t, "btn-2", e.Compile(buttonDecl(), "btn", false))
	assert.Equal(t, "btn-3", e.Compile(Declaration{{Key: "color", Value: "black"}}, "btn", false))
}

func TestCompileNeutralizesDangerousValues(t *testing.T) {
	e := New(Config{})
	e.Compile(Declaration{{Key: "background", Value: "url(javascript:alert(1))"}}, "x", false)

	assert.Equal(t, ".x{background:unset;}", e.Drain())
	assert.Equal(t, 1, e.Stats().Neutralized)
}

func TestSSRIsolation(t *testing.T) {
	e := New(Config{})

	e.Reset()
	e.Insert("A")
	assert.Equal(t, "A", e.Drain())

	e.Reset()
	assert.Equal(t, "", e.Drain())
	assert.Empty(t, e.Rules())
	assert.Equal(t, "", e.StyleTag())
}

func TestStyleTag(t *testing.T) {
	e := New(Config{})
	e.Compile(Declaration{{Key: "color", Value: "red"}}, "a", false)
	assert.Equal(t, `<style id="cssengine-styles">.a{color:red;}</style>`, e.StyleTag())

	custom := New(Config{StyleElementID: "app-css"})
	custom.Insert(".b{color:blue;}")
	assert.Equal(t, `<style id="app-css">.b{color:blue;}</style>`, custom.StyleTag())
}

func TestResetClearsRegistries(t *testing.T) {
	e := New(Config{})
	require.Equal(t, "btn", e.Compile(buttonDecl(), "btn", true))
	e.Keyframes(Declaration{{Key: "to", Value: Declaration{{Key: "opacity", Value: 1}}}})

	e.Reset()

	assert.Equal(t, Stats{}, e.Stats())
	assert.Equal(t, "btn", e.Compile(buttonDecl(), "btn", true), "allocator and static cache were cleared")
	assert.Len(t, e.Rules(), 3, "rules are injected again")
	assert.Equal(t, "cssengine-kf-1", e.Keyframes(Declaration{{Key: "to", Value: Declaration{{Key: "opacity", Value: 1}}}}))
}

func TestLiveMode(t *testing.T) {
	doc := NewMemoryDocument()
	existing := doc.CreateStyleElement(DefaultStyleElementID)
	require.NoError(t, existing.InsertRule(".pre{color:black;}", 0))

	e := New(Config{Document: doc})
	require.True(t, e.IsLive())

	e.Compile(Declaration{{Key: "color", Value: "red"}}, "a", false)
	e.Insert(".broken{color}")
	e.Insert(".b{color:blue;}")

	assert.Equal(t, []string{DefaultStyleElementID}, doc.ElementIDs(), "existing element is reused")
	assert.Equal(t, []string{".pre{color:black;}", ".a{color:red;}", ".b{color:blue;}"}, doc.Sheet(DefaultStyleElementID).Rules())

	stats := e.Stats()
	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 1, stats.Rejected)

	assert.Equal(t, "", e.Drain(), "nothing is buffered in live mode")
	assert.Nil(t, e.Rules())
}

func TestLiveModeCreatesElement(t *testing.T) {
	doc := NewMemoryDocument()
	e := New(Config{Document: doc, StyleElementID: "custom"})
	e.Insert(".a{color:red;}")

	require.NotNil(t, doc.Sheet("custom"))
	assert.Equal(t, ".a{color:red;}", doc.Sheet("custom").String())
}

func TestNewDefaults(t *testing.T) {
	cfg := New(Config{}).Config()
	assert.Equal(t, DefaultStyleElementID, cfg.StyleElementID)
	assert.Equal(t, DefaultGeneratorCacheSize, cfg.GeneratorCacheSize)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
}

func TestLoggerName(t *testing.T) {
	e := New(Config{Logger: zap.NewNop().Named("cli")})
	assert.Equal(t, "cli.cssengine", e.log.Name())
}

func TestSanitizeValue(t *testing.T) {
	assert.Equal(t, "unset", SanitizeValue("expression(alert(1))"))
	assert.Equal(t, "1px solid red", SanitizeValue("1px solid red"))
}
