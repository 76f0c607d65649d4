package cssgen

import (
	"strconv"
	"sync"
)

// Allocator hands out class names that are unique for its lifetime.
//
// A base name is issued verbatim the first time; later requests get the
// first free numeric suffix starting at 2 (btn, btn-2, btn-3, ...).
type Allocator struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewAllocator creates an empty allocator
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{})}
}

// Allocate registers and returns a unique name derived from base
func (a *Allocator) Allocate(base string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, taken := a.used[base]; !taken {
		a.used[base] = struct{}{}
		return base
	}

	for n := 2; ; n++ {
		name := base + "-" + strconv.Itoa(n)
		if _, taken := a.used[name]; !taken {
			a.used[name] = struct{}{}
			return name
		}
	}
}

// Has reports whether name was issued
func (a *Allocator) Has(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.used[name]
	return ok
}

// Len returns the number of issued names
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.used)
}

// Reset forgets every issued name
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.used = make(map[string]struct{})
}
