package cssengine

import (
	"fmt"
	"sync"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/zap"
)

// defaultComponent scopes styles created without a component name
const defaultComponent = "style"

// GeneratorFunc maps call arguments to a declaration
type GeneratorFunc func(args ...any) Declaration

// StyleGenerator is a parametric style: a function from arguments to a
// declaration plus a bounded cache from argument key to class name.
//
// A generator is bound to an engine and a base class name when the styles it
// belongs to are created, and stays bound there. Passing a bound generator to
// another CreateStyles call binds a copy sharing its function instead, so
// classes handed out earlier keep their base name and cache.
type StyleGenerator struct {
	name string
	fn   GeneratorFunc

	mu     sync.Mutex
	engine *Engine
	base   string
	cache  *cssgen.LRU[string]
}

// NewGenerator creates an unbound generator
func NewGenerator(name string, fn GeneratorFunc) *StyleGenerator {
	return &StyleGenerator{name: name, fn: fn}
}

// Name returns the style name of the generator
func (g *StyleGenerator) Name() string {
	return g.name
}

// bind attaches g to e and base and returns g, or returns a new generator
// bound there when g already belongs to another engine or base.
func (g *StyleGenerator) bind(e *Engine, base string) *StyleGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.engine == e && g.base == base && g.cache != nil {
		return g
	}
	if g.engine != nil {
		e.log.Debug("Generator already bound, binding a copy",
			zap.String("generator", g.name),
			zap.String("bound", g.base),
			zap.String("base", base))
		return NewGenerator(g.name, g.fn).bind(e, base)
	}
	g.engine = e
	g.base = base
	g.cache = cssgen.NewLRU[string](e.config.GeneratorCacheSize)
	g.cache.OnEvict(func(key string) {
		e.log.Debug("Generator cache eviction",
			zap.String("generator", base),
			zap.String("key", key))
	})
	return g
}

// Class returns the class for args, compiling fn(args...) on a cache miss.
// An unbound generator returns "".
func (g *StyleGenerator) Class(args ...any) string {
	g.mu.Lock()
	e, base, cache := g.engine, g.base, g.cache
	g.mu.Unlock()
	if e == nil {
		return ""
	}

	key := cssgen.ArgsKey(args...)
	return cache.GetOrSet(key, func() string {
		return e.Compile(g.fn(args...), base+"-"+cssgen.CacheKeySuffix(key), false)
	})
}

// CacheStats returns the counters of the generator cache
func (g *StyleGenerator) CacheStats() cssgen.CacheStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cache == nil {
		return cssgen.CacheStats{}
	}
	return g.cache.Stats()
}

// CacheKeys returns cached argument keys from least to most recently used
func (g *StyleGenerator) CacheKeys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cache == nil {
		return nil
	}
	return g.cache.Keys()
}

// Style is one named entry of a component's styles: either a static
// declaration or a generator.
type Style struct {
	Name string
	Decl Declaration
	Gen  *StyleGenerator
}

// Static creates a style compiled once and shared by content
func Static(name string, decl Declaration) Style {
	return Style{Name: name, Decl: decl}
}

// Dynamic creates a style computed per argument list
func Dynamic(name string, fn GeneratorFunc) Style {
	return Style{Name: name, Gen: NewGenerator(name, fn)}
}

// Classes maps style names of a component to class names
type Classes struct {
	component string
	names     []string
	static    map[string]string
	dynamic   map[string]*StyleGenerator
}

// Get returns the class of a static style. Dynamic styles are called
// without arguments. Unknown names return "".
func (c *Classes) Get(name string) string {
	if class, ok := c.static[name]; ok {
		return class
	}
	if g, ok := c.dynamic[name]; ok {
		return g.Class()
	}
	return ""
}

// Func returns a function producing the class of name for given arguments.
// For static styles the arguments are ignored.
func (c *Classes) Func(name string) func(args ...any) string {
	if g, ok := c.dynamic[name]; ok {
		return g.Class
	}
	class := c.static[name]
	return func(...any) string { return class }
}

// Generator returns the generator behind a dynamic style
func (c *Classes) Generator(name string) (*StyleGenerator, bool) {
	g, ok := c.dynamic[name]
	return g, ok
}

// Names returns style names in declaration order
func (c *Classes) Names() []string {
	return append([]string(nil), c.names...)
}

// Component returns the class token the styles are scoped to
func (c *Classes) Component() string {
	return c.component
}

// CreateStyles compiles the styles of a component. Each style gets the base
// class name <component>-<name>; static styles are compiled immediately
// through the static cache, dynamic ones are bound and compiled on call.
func (e *Engine) CreateStyles(component string, styles ...Style) *Classes {
	scope := cssgen.ClassToken(component)
	if scope == "" {
		scope = defaultComponent
	}

	c := &Classes{
		component: scope,
		static:    make(map[string]string),
		dynamic:   make(map[string]*StyleGenerator),
	}
	for _, s := range styles {
		if s.Decl == nil && s.Gen == nil {
			continue
		}
		base := scope + "-" + cssgen.ClassToken(s.Name)
		c.names = append(c.names, s.Name)
		if s.Gen != nil {
			c.dynamic[s.Name] = s.Gen.bind(e, base)
			continue
		}
		c.static[s.Name] = e.Compile(s.Decl, base, true)
	}
	return c
}

// ThemedClasses recomputes a component's styles whenever the active theme
// changes identity.
type ThemedClasses struct {
	engine    *Engine
	component string
	fn        func(*theme.Tree) []Style

	mu        sync.Mutex
	lastTheme *theme.Tree
	cached    *Classes
}

// CreateThemedStyles defers style creation until Resolve, where fn receives
// the active theme.
func (e *Engine) CreateThemedStyles(component string, fn func(*theme.Tree) []Style) *ThemedClasses {
	return &ThemedClasses{engine: e, component: component, fn: fn}
}

// Resolve returns the classes for the active theme. They are rebuilt only
// when the theme pointer differs from the previous call. Without an active
// theme it returns ErrNoTheme.
func (t *ThemedClasses) Resolve() (*Classes, error) {
	active := t.engine.Theme()
	if active == nil {
		return nil, fmt.Errorf("%w: styles of %q depend on the theme; install one with SetThemeGetter", ErrNoTheme, t.component)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cached != nil && active == t.lastTheme {
		return t.cached, nil
	}
	t.cached = t.engine.CreateStyles(t.component, t.fn(active)...)
	t.lastTheme = active
	return t.cached, nil
}
