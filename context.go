package styled

import (
	"reflect"
	"sync"
)

// Styler is the styling function: it compiles tokens into a class string and
// injects the corresponding rules into its stylesheet.
type Styler interface {
	Style(tokens ...Token) string
}

// ContextProvider is implemented by stylers that expose their context
// directly. Stylers without it are asked once to run a capturing Directive.
type ContextProvider interface {
	Context() *Context
}

// StyleFunc adapts a plain function to Styler. Functions are not comparable,
// so its context cannot be cached and is captured again on every render of a
// definition with function tokens. Stylers that render often should be a
// comparable type implementing ContextProvider instead.
type StyleFunc func(tokens ...Token) string

// Style implements Styler.
func (f StyleFunc) Style(tokens ...Token) string {
	return f(tokens...)
}

// ThemeFunc looks up a theme value, e.g. theme("colors", "purple", "600").
type ThemeFunc func(section string, key ...string) any

// Context is the styling function's configuration as seen by token
// functions. It is owned by the styling function and only read here.
type Context struct {
	TW    StyleFunc
	Theme ThemeFunc
	Tag   func(name string) string
}

// reservedAccessors are the names an inline plugin reads from its argument.
var reservedAccessors = [...]string{"tw", "theme", "tag"}

func isReserved(name string) bool {
	for _, reserved := range reservedAccessors {
		if name == reserved {
			return true
		}
	}
	return false
}

// Lookup implements Values for the reserved accessors.
func (c *Context) Lookup(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	switch name {
	case "tw":
		if c.TW != nil {
			return c.TW, true
		}
	case "theme":
		if c.Theme != nil {
			return c.Theme, true
		}
	case "tag":
		if c.Tag != nil {
			return c.Tag, true
		}
	}
	return nil, false
}

type contextCache struct {
	mu      sync.RWMutex
	entries map[Styler]*Context
}

var contexts = &contextCache{entries: make(map[Styler]*Context)}

// resolveContext returns the context of s. Captured contexts are cached per
// styler; stylers that cannot be map keys are captured on every call.
func resolveContext(s Styler) *Context {
	if s == nil {
		return nil
	}
	if p, ok := s.(ContextProvider); ok {
		return p.Context()
	}
	if !reflect.ValueOf(s).Comparable() {
		return capture(s)
	}

	contexts.mu.RLock()
	ctx, ok := contexts.entries[s]
	contexts.mu.RUnlock()
	if ok {
		return ctx
	}

	ctx = capture(s)
	if ctx != nil {
		contexts.mu.Lock()
		contexts.entries[s] = ctx
		contexts.mu.Unlock()
	}
	return ctx
}

// capture asks s to resolve a Directive that captures the context it is called
// with. The directive yields no classes, so nothing is injected.
func capture(s Styler) *Context {
	var captured *Context
	s.Style(Directive(func(ctx *Context) Token {
		if captured == nil {
			captured = ctx
		}
		return ""
	}))
	return captured
}

// ForgetContext drops the cached context of s, if any.
func ForgetContext(s Styler) {
	if s == nil || !reflect.ValueOf(s).Comparable() {
		return
	}
	contexts.mu.Lock()
	delete(contexts.entries, s)
	contexts.mu.Unlock()
}

func forgetContexts() {
	contexts.mu.Lock()
	contexts.entries = make(map[Styler]*Context)
	contexts.mu.Unlock()
}
