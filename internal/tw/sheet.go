package tw

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Sheet receives the rules an Engine generates. Implementations must be safe
// for concurrent use.
type Sheet interface {
	// Insert adds rule and reports whether it was new.
	Insert(rule string) bool
}

// VirtualSheet keeps rules in memory, in insertion order and without
// duplicates. It is the sheet used for server-side rendering and tests.
type VirtualSheet struct {
	mu    sync.Mutex
	rules *linkedhashset.Set
}

// NewVirtualSheet returns an empty VirtualSheet.
func NewVirtualSheet() *VirtualSheet {
	return &VirtualSheet{rules: linkedhashset.New()}
}

// Insert implements Sheet.
func (s *VirtualSheet) Insert(rule string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rules.Contains(rule) {
		return false
	}
	s.rules.Add(rule)
	return true
}

// Rules returns the inserted rules in insertion order.
func (s *VirtualSheet) Rules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.rules.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}

// Len returns the number of rules.
func (s *VirtualSheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.Size()
}

// Reset removes all rules.
func (s *VirtualSheet) Reset() {
	s.mu.Lock()
	s.rules.Clear()
	s.mu.Unlock()
}

// String returns the rules as a stylesheet, one rule per line.
func (s *VirtualSheet) String() string {
	return strings.Join(s.Rules(), "\n")
}

// WriterSheet writes every new rule to w as soon as it is inserted.
type WriterSheet struct {
	virtual *VirtualSheet

	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewWriterSheet returns a sheet streaming rules to w.
func NewWriterSheet(w io.Writer) *WriterSheet {
	return &WriterSheet{virtual: NewVirtualSheet(), w: w}
}

// Insert implements Sheet.
func (s *WriterSheet) Insert(rule string) bool {
	if !s.virtual.Insert(rule) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		if _, err := fmt.Fprintln(s.w, rule); err != nil {
			s.err = fmt.Errorf("write rule: %w", err)
		}
	}
	return true
}

// Err returns the first write error.
func (s *WriterSheet) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
