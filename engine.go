package cssengine

import (
	"fmt"
	"html"
	"sync"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"github.com/yacobolo/cssengine/theme"
	"go.uber.org/zap"
)

// Declaration is an ordered style declaration
type Declaration = cssgen.Declaration

// Entry is a single key/value pair of a Declaration
type Entry = cssgen.Entry

// Document is a rendering surface owning style elements
type Document = cssgen.Document

// StyleSheet is a live stylesheet
type StyleSheet = cssgen.StyleSheet

// MemoryDocument is an in-process Document validating every inserted rule
type MemoryDocument = cssgen.MemoryDocument

// NewMemoryDocument creates an empty in-process document
func NewMemoryDocument() *MemoryDocument {
	return cssgen.NewMemoryDocument()
}

// Defaults applied by New
const (
	DefaultStyleElementID     = "cssengine-styles"
	DefaultGeneratorCacheSize = 100
	DefaultPrefix             = "cssengine"
)

// Config configures an Engine
type Config struct {
	// Document selects live injection. When nil, rules are collected in an
	// ordered buffer for server-side rendering.
	Document Document
	// StyleElementID is the id of the style element rules go to, and of the
	// tag rendered by StyleTag.
	StyleElementID string
	// GeneratorCacheSize bounds the per-generator class cache
	GeneratorCacheSize int
	// Prefix is used for generated keyframe names
	Prefix string
	// ThemeGetter returns the active theme for themed styles
	ThemeGetter func() *theme.Tree
	Logger      *zap.Logger
}

// Stats counts engine activity since the last reset
type Stats struct {
	Compiled    int // declarations compiled into a new class
	StaticHits  int // compilations answered by the static cache
	Inserted    int // rules accepted by the sink
	Rejected    int // rules dropped by the sink
	Neutralized int // values replaced by the sanitizer
}

// Engine owns every piece of styling state: the class name registry, the
// static style cache, keyframe and font-face registries and the active sink.
//
// All methods are safe for concurrent use, but Reset and Drain delimit a
// server-side request: two requests must not interleave between them.
type Engine struct {
	config Config
	log    *zap.Logger

	sink   cssgen.Sink
	buffer *cssgen.Buffer // nil in live mode
	alloc  *cssgen.Allocator

	mu        sync.Mutex
	static    map[string]string   // declaration hash -> class
	keyframes map[string]string   // keyframes body -> name
	fontFaces map[string]struct{} // font-face bodies
	kfCounter uint64
	stats     Stats

	themeMu     sync.RWMutex
	themeGetter func() *theme.Tree
}

// New creates an engine, filling unset Config fields with defaults
func New(config Config) *Engine {
	if config.StyleElementID == "" {
		config.StyleElementID = DefaultStyleElementID
	}
	if config.GeneratorCacheSize <= 0 {
		config.GeneratorCacheSize = DefaultGeneratorCacheSize
	}
	if config.Prefix == "" {
		config.Prefix = DefaultPrefix
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		config:      config,
		log:         log.Named("cssengine"),
		alloc:       cssgen.NewAllocator(),
		static:      make(map[string]string),
		keyframes:   make(map[string]string),
		fontFaces:   make(map[string]struct{}),
		themeGetter: config.ThemeGetter,
	}

	if config.Document != nil {
		e.sink = cssgen.NewLiveSink(config.Document, config.StyleElementID)
		e.log.Debug("Using live stylesheet", zap.String("id", config.StyleElementID))
	} else {
		e.buffer = cssgen.NewBuffer()
		e.sink = e.buffer
	}
	return e
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.config
}

// IsLive reports whether rules go to a live stylesheet
func (e *Engine) IsLive() bool {
	return e.buffer == nil
}

// Compile returns the class for decl, allocating it from baseName and
// injecting its rules on first use.
//
// With useCache, a declaration whose content was compiled before returns the
// earlier class without allocating or injecting anything. The cache is
// sensitive to key order.
func (e *Engine) Compile(decl Declaration, baseName string, useCache bool) string {
	var hash string
	if useCache {
		hash = cssgen.HashDeclaration(decl)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if useCache {
		if class, ok := e.static[hash]; ok {
			e.stats.StaticHits++
			return class
		}
	}

	class := e.alloc.Allocate(baseName)
	e.countNeutralized(decl, class)
	for _, rule := range cssgen.CompileRules(decl, class) {
		e.insert(rule)
	}
	e.stats.Compiled++

	if useCache {
		e.static[hash] = class
	}
	return class
}

// Insert appends a raw rule to the active sink. Rules the sink rejects are
// logged and dropped.
func (e *Engine) Insert(rule string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.insert(rule)
}

func (e *Engine) insert(rule string) {
	if err := e.sink.Insert(rule); err != nil {
		e.stats.Rejected++
		e.log.Debug("Rule rejected", zap.String("rule", rule), zap.Error(err))
		return
	}
	e.stats.Inserted++
}

// countNeutralized records scalar values the sanitizer will replace
func (e *Engine) countNeutralized(decl Declaration, class string) {
	for _, entry := range decl {
		if nested, ok := entry.Value.(Declaration); ok {
			e.countNeutralized(nested, class)
			continue
		}
		if s, ok := entry.Value.(string); ok && cssgen.IsDangerous(s) {
			e.stats.Neutralized++
			e.log.Debug("Value neutralized",
				zap.String("class", class),
				zap.String("property", entry.Key))
		}
	}
}

// Drain returns every collected rule concatenated in emission order. It is
// empty in live mode.
func (e *Engine) Drain() string {
	if e.buffer == nil {
		return ""
	}
	return e.buffer.String()
}

// Rules returns a copy of the collected rules
func (e *Engine) Rules() []string {
	if e.buffer == nil {
		return nil
	}
	return e.buffer.Rules()
}

// StyleTag returns the collected CSS wrapped in a style element, or "" when
// nothing was collected.
func (e *Engine) StyleTag() string {
	css := e.Drain()
	if css == "" {
		return ""
	}
	return fmt.Sprintf(`<style id="%s">%s</style>`, html.EscapeString(e.config.StyleElementID), css)
}

// Reset clears the rule buffer, the static cache, the class name registry
// and the keyframe and font-face registries. Generator caches are left
// alone; they belong to their generators.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.buffer != nil {
		e.buffer.Reset()
	}
	e.alloc.Reset()
	e.static = make(map[string]string)
	e.keyframes = make(map[string]string)
	e.fontFaces = make(map[string]struct{})
	e.kfCounter = 0
	e.stats = Stats{}
	e.log.Debug("Engine reset")
}

// Stats returns counters collected since the last reset
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// SetThemeGetter installs the accessor themed styles read the active theme
// from and returns the previous one.
func (e *Engine) SetThemeGetter(fn func() *theme.Tree) func() *theme.Tree {
	e.themeMu.Lock()
	defer e.themeMu.Unlock()
	prev := e.themeGetter
	e.themeGetter = fn
	return prev
}

// Theme returns the active theme, or nil when there is none
func (e *Engine) Theme() *theme.Tree {
	e.themeMu.RLock()
	getter := e.themeGetter
	e.themeMu.RUnlock()
	if getter == nil {
		return nil
	}
	return getter()
}

// SanitizeValue strips NUL bytes from value and replaces values that could
// execute code or escape the style element with "unset".
func SanitizeValue(value string) string {
	return cssgen.Sanitize(value)
}

// Hash returns the base-36 content hash used for class name suffixes
func Hash(s string) string {
	return cssgen.Hash(s)
}
