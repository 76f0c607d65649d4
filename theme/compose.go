package theme

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/knadh/koanf/maps"
	"github.com/yacobolo/cssengine/internal/cssgen"
	"go.uber.org/zap"
)

// DefaultCacheSize is the number of composed trees a Composer keeps
const DefaultCacheSize = 64

// Mode selects how overrides are applied to a base tree
type Mode int

const (
	// ModeMerge merges nested maps recursively; other override values
	// replace the base value and nil overrides are ignored.
	ModeMerge Mode = iota
	// ModeReplace replaces every top-level category named in the overrides
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "merge"
}

// ParseMode parses "merge" or "replace"; "" means merge
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "merge":
		return ModeMerge, nil
	case "replace":
		return ModeReplace, nil
	}
	return ModeMerge, fmt.Errorf("unknown compose mode %q (want merge or replace)", s)
}

// Composer derives trees from a base and overrides, memoizing results.
//
// Results are keyed by the content of base and overrides plus the mode, so
// identical inputs return the same *Tree. Once more than the configured
// number of results is stored the oldest inserted one is dropped; lookups do
// not refresh an entry.
type Composer struct {
	mu    sync.Mutex
	cache *cssgen.FIFO[*Tree]
	log   *zap.Logger
}

// NewComposer creates a composer keeping up to max results (DefaultCacheSize
// when max <= 0). A nil logger disables logging.
func NewComposer(max int, log *zap.Logger) *Composer {
	if max <= 0 {
		max = DefaultCacheSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		cache: cssgen.NewFIFO[*Tree](max),
		log:   log.Named("theme"),
	}
}

// Compose applies overrides to base. A nil base is treated as empty.
func (c *Composer) Compose(base *Tree, overrides map[string]any, mode Mode) *Tree {
	if base == nil {
		base = New(nil)
	}
	key := cssgen.Hash(contentKey(base.root) + "|" + contentKey(overrides) + "|" + mode.String())

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.cache.Get(key); ok {
		return t
	}

	var over map[string]any
	if overrides != nil {
		over = maps.Copy(overrides)
		maps.IntfaceKeysToStrings(over)
		normalizeMaps(over)
	}

	var root map[string]any
	switch mode {
	case ModeReplace:
		root = replaceCategories(base.root, over)
	default:
		root = mergeTrees(base.root, over)
	}

	t := &Tree{root: root}
	for _, evicted := range c.cache.Put(key, t) {
		c.log.Debug("composed theme evicted", zap.String("key", evicted))
	}
	return t
}

// Merge folds overrides into base left to right in merge mode
func (c *Composer) Merge(base *Tree, overrides ...map[string]any) *Tree {
	t := base
	if t == nil {
		t = New(nil)
	}
	for _, o := range overrides {
		t = c.Compose(t, o, ModeMerge)
	}
	return t
}

// Variant returns a function applying overrides to any base tree
func (c *Composer) Variant(overrides map[string]any) func(*Tree) *Tree {
	return func(base *Tree) *Tree {
		return c.Compose(base, overrides, ModeMerge)
	}
}

// Len returns the number of memoized trees
func (c *Composer) Len() int {
	return c.cache.Len()
}

// Stats returns cache counters
func (c *Composer) Stats() cssgen.CacheStats {
	return c.cache.Stats()
}

// Reset drops every memoized tree
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Reset()
}

// mergeTrees returns base with over merged in. Subtrees of base that over
// does not touch are shared, never copied or mutated.
func mergeTrees(base, over map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range over {
		if ov == nil {
			continue
		}
		om, overIsMap := ov.(map[string]any)
		bm, baseIsMap := base[k].(map[string]any)
		if overIsMap && baseIsMap {
			out[k] = mergeTrees(bm, om)
			continue
		}
		out[k] = ov
	}
	return out
}

// replaceCategories swaps whole top-level categories
func replaceCategories(base, over map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range over {
		if ov != nil {
			out[k] = ov
		}
	}
	return out
}

// contentKey serializes m with sorted keys
func contentKey(m map[string]any) string {
	if m == nil {
		return "{}"
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(data)
}
