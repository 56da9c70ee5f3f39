package styled

import (
	"strings"
	"sync"
)

// element is what recordPragma returns.
type element struct {
	typ   any
	props Props
}

// recorder is a rendering primitive that keeps every call.
type recorder struct {
	mu    sync.Mutex
	calls []element
}

func (r *recorder) pragma(typ any, props Props, _ ...any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	el := element{typ: typ, props: props}
	r.calls = append(r.calls, el)
	return el
}

// recordingStyler joins string tokens, resolves directives with its own
// context and records every call.
type recordingStyler struct {
	mu       sync.Mutex
	calls    [][]Token
	captures int
	rules    map[string]string
	emitted  []string
	ctx      *Context
}

func newRecordingStyler() *recordingStyler {
	s := &recordingStyler{rules: map[string]string{}}
	s.ctx = &Context{
		TW:    StyleFunc(s.Style),
		Theme: func(section string, key ...string) any { return section + ":" + strings.Join(key, ".") },
		Tag:   func(name string) string { return "tag-" + name },
	}
	return s
}

func (s *recordingStyler) Style(tokens ...Token) string {
	s.mu.Lock()
	s.calls = append(s.calls, tokens)
	s.mu.Unlock()

	var classes []string
	for _, token := range tokens {
		classes = s.collect(classes, token)
	}
	return strings.Join(classes, " ")
}

func (s *recordingStyler) collect(classes []string, token Token) []string {
	switch t := token.(type) {
	case string:
		for _, class := range strings.Fields(t) {
			if mapped, ok := s.rules[class]; ok {
				s.mu.Lock()
				s.emitted = append(s.emitted, "."+mapped+"{}")
				s.mu.Unlock()
				class = mapped
			}
			classes = append(classes, class)
		}
	case []Token:
		for _, nested := range t {
			classes = s.collect(classes, nested)
		}
	case Directive:
		if out := t(s.ctx); out != "" {
			classes = s.collect(classes, out)
		} else {
			s.mu.Lock()
			s.captures++
			s.mu.Unlock()
		}
	}
	return classes
}

func (s *recordingStyler) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *recordingStyler) lastCall() []Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

// fixedHash makes identifiers predictable in assembly tests.
func fixedHash(id string) Hasher {
	return func(string) string { return id }
}
