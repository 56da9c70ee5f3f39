package styled

import (
	"errors"
	"strings"
	"sync"

	"github.com/yacobolo/styled/internal/hash"
)

// ErrNoCreateElement is the panic value of rendering through a binding that
// has no rendering primitive.
var ErrNoCreateElement = errors.New("missing createElement: call styled.Bind or styled.With before rendering")

// Hasher derives an identifier from the canonical text of a definition. The
// result must be usable as a CSS class name.
type Hasher func(text string) string

// Binding pairs a rendering primitive with a styling function. Nil fields are
// filled from the process-wide default when the binding is used.
type Binding struct {
	CreateElement Pragma
	ForwardRef    ForwardRef
	TW            Styler
	Hash          Hasher
}

var (
	defaultMu      sync.RWMutex
	defaultBinding = initialBinding()
)

func initialBinding() Binding {
	return Binding{
		CreateElement: missingCreateElement,
		TW:            plainStyler{},
		Hash:          hash.Cyrb32,
	}
}

func missingCreateElement(any, Props, ...any) any {
	panic(ErrNoCreateElement)
}

// Default returns a copy of the process-wide default binding.
func Default() Binding {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBinding
}

// Bind overlays the non-nil fields of b on the process-wide default binding.
// Later calls layer over earlier ones. Definitions created before a Bind keep
// the binding they were created with.
func Bind(b Binding) {
	defaultMu.Lock()
	defaultBinding = overlay(defaultBinding, b)
	defaultMu.Unlock()

	forgetContexts()
}

// BindPragma binds a bare rendering primitive and, optionally, a styling
// function.
func BindPragma(createElement Pragma, tw ...Styler) {
	Bind(pragmaBinding(createElement, tw))
}

// Reset restores the initial default binding and clears cached contexts.
func Reset() {
	defaultMu.Lock()
	defaultBinding = initialBinding()
	defaultMu.Unlock()

	forgetContexts()
}

// With returns an entry point bound to b. The process-wide default is not
// modified; a nil TW or Hash is taken from it now, not at first use.
func With(b Binding) *Styled {
	current := Default()
	scoped := overlay(Binding{
		CreateElement: missingCreateElement,
		TW:            current.TW,
		Hash:          current.Hash,
	}, b)
	return &Styled{binding: &scoped}
}

// WithPragma returns an entry point bound to a bare rendering primitive and,
// optionally, a styling function.
func WithPragma(createElement Pragma, tw ...Styler) *Styled {
	return With(pragmaBinding(createElement, tw))
}

func pragmaBinding(createElement Pragma, tw []Styler) Binding {
	b := Binding{CreateElement: createElement}
	if len(tw) > 0 {
		b.TW = tw[0]
	}
	return b
}

func overlay(base, over Binding) Binding {
	if over.CreateElement != nil {
		base.CreateElement = over.CreateElement
	}
	if over.ForwardRef != nil {
		base.ForwardRef = over.ForwardRef
	}
	if over.TW != nil {
		base.TW = over.TW
	}
	if over.Hash != nil {
		base.Hash = over.Hash
	}
	return base
}

// complete fills the fields create relies on.
func complete(b Binding) Binding {
	if b.CreateElement == nil {
		b.CreateElement = missingCreateElement
	}
	if b.TW == nil {
		b.TW = plainStyler{}
	}
	if b.Hash == nil {
		b.Hash = hash.Cyrb32
	}
	return b
}

// plainStyler is the default styling function. It joins string tokens and
// resolves functions with plainContext, and injects nothing.
type plainStyler struct{}

var plainContext *Context

func init() {
	plainContext = &Context{
		TW:    StyleFunc(plainStyler{}.Style),
		Theme: func(string, ...string) any { return nil },
		Tag:   func(name string) string { return name },
	}
}

func (p plainStyler) Style(tokens ...Token) string {
	var classes []string
	for _, token := range tokens {
		classes = p.collect(classes, token)
	}
	return strings.Join(classes, " ")
}

func (p plainStyler) collect(classes []string, token Token) []string {
	switch t := token.(type) {
	case nil, bool:
		return classes
	case string:
		return append(classes, strings.Fields(t)...)
	case []Token:
		for _, nested := range t {
			classes = p.collect(classes, nested)
		}
		return classes
	case []string:
		for _, nested := range t {
			classes = append(classes, strings.Fields(nested)...)
		}
		return classes
	}

	switch kind, fn := classify(token); kind {
	case directiveFunc:
		return p.collect(classes, fn.(Directive)(plainContext))
	case propsFunc:
		return p.collect(classes, fn.(PropsFunc)(plainContext))
	case factoryFunc:
		return p.collect(classes, fn.(StyleFactory)(Props{}, plainContext))
	}
	return classes
}
