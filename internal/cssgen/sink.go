package cssgen

import (
	"fmt"
	"strings"
	"sync"
)

// Sink receives compiled CSS rules in emission order
type Sink interface {
	Insert(rule string) error
}

// Buffer collects rules in memory for server-side rendering
type Buffer struct {
	mu    sync.Mutex
	rules []string
}

// NewBuffer creates an empty rule buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Insert appends rule; it never fails
func (b *Buffer) Insert(rule string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append(b.rules, rule)
	return nil
}

// Rules returns a copy of the collected rules
func (b *Buffer) Rules() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.rules...)
}

// String returns all collected rules concatenated
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.rules, "")
}

// Len returns the number of collected rules
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rules)
}

// Reset drops every collected rule
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = nil
}

// StyleSheet is a live stylesheet attached to a rendering surface
type StyleSheet interface {
	// InsertRule inserts rule at index, failing for rules the sheet rejects
	InsertRule(rule string, index int) error
	// Len returns the number of rules in the sheet
	Len() int
}

// Document is a rendering surface that owns style elements
type Document interface {
	// StyleElement returns the sheet of the style element with id, if any
	StyleElement(id string) (StyleSheet, bool)
	// CreateStyleElement appends a new style element with id and returns its sheet
	CreateStyleElement(id string) StyleSheet
}

// LiveSink appends rules to the end of a live stylesheet
type LiveSink struct {
	sheet StyleSheet
}

// NewLiveSink attaches to the style element id of doc, creating it when missing
func NewLiveSink(doc Document, id string) *LiveSink {
	sheet, ok := doc.StyleElement(id)
	if !ok {
		sheet = doc.CreateStyleElement(id)
	}
	return &LiveSink{sheet: sheet}
}

// Insert appends rule to the sheet
func (s *LiveSink) Insert(rule string) error {
	return s.sheet.InsertRule(rule, s.sheet.Len())
}

// Sheet returns the underlying stylesheet
func (s *LiveSink) Sheet() StyleSheet {
	return s.sheet
}

// MemoryDocument is an in-process Document. Its sheets validate rules with
// the CSS parser and reject malformed input the way a browser does.
type MemoryDocument struct {
	mu       sync.Mutex
	elements map[string]*MemorySheet
	order    []string
}

// NewMemoryDocument creates a document without style elements
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{elements: make(map[string]*MemorySheet)}
}

// StyleElement implements Document
func (d *MemoryDocument) StyleElement(id string) (StyleSheet, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sheet, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return sheet, true
}

// CreateStyleElement implements Document
func (d *MemoryDocument) CreateStyleElement(id string) StyleSheet {
	d.mu.Lock()
	defer d.mu.Unlock()
	sheet := &MemorySheet{}
	d.elements[id] = sheet
	d.order = append(d.order, id)
	return sheet
}

// Sheet returns the concrete sheet of element id
func (d *MemoryDocument) Sheet(id string) *MemorySheet {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[id]
}

// ElementIDs returns style element ids in creation order
func (d *MemoryDocument) ElementIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.order...)
}

// MemorySheet is the StyleSheet of a MemoryDocument
type MemorySheet struct {
	mu    sync.Mutex
	rules []string
}

// InsertRule implements StyleSheet
func (s *MemorySheet) InsertRule(rule string, index int) error {
	if err := ValidateRule(rule); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index > len(s.rules) {
		return fmt.Errorf("%w: index %d out of range [0,%d]", ErrMalformedRule, index, len(s.rules))
	}
	s.rules = append(s.rules, "")
	copy(s.rules[index+1:], s.rules[index:])
	s.rules[index] = rule
	return nil
}

// Len implements StyleSheet
func (s *MemorySheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// Rules returns a copy of the sheet's rules
func (s *MemorySheet) Rules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rules...)
}

// String returns the sheet's rules concatenated
func (s *MemorySheet) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.rules, "")
}
