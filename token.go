package styled

import "fmt"

// Token is an opaque style descriptor handed to the styling function: a
// string, a nested []Token, a structured style object or one of the function
// shapes StyleFactory, PropsFunc and Directive. Only functions are interpreted
// by this package; everything else passes through untouched.
type Token = any

// Values is read access to named values. Props implement it for render
// properties and *Context implements it for the styling function's internals.
type Values interface {
	Lookup(name string) (any, bool)
}

// StyleFactory computes a token from the render properties and the styling
// context. It is always evaluated lazily by the styling function, inside its
// own evaluation context.
type StyleFactory func(p Values, ctx *Context) Token

// PropsFunc computes a token from the render properties alone.
//
// A PropsFunc that reads one of the reserved names "tw", "theme" or "tag"
// while they are absent from the properties is treated as an inline plugin:
// its result is discarded and the function is handed to the styling function,
// which calls it again with its *Context.
type PropsFunc func(p Values) Token

// Directive is a token the styling function resolves with its own context
// while composing the class string.
type Directive func(ctx *Context) Token

// Props are the render-time properties of a styled definition.
type Props map[string]any

// Lookup implements Values.
func (p Props) Lookup(name string) (any, bool) {
	value, ok := p[name]
	return value, ok
}

// Clone returns a shallow copy of p. The copy is never nil.
func (p Props) Clone() Props {
	out := make(Props, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Get returns the named value or nil.
func Get(v Values, name string) any {
	if v == nil {
		return nil
	}
	value, _ := v.Lookup(name)
	return value
}

// String returns the named value as a string. Non-string values are
// formatted with fmt; missing values yield "".
func String(v Values, name string) string {
	return stringOf(Get(v, name))
}

// Bool reports whether the named value is a true bool or a non-empty string.
func Bool(v Values, name string) bool {
	switch value := Get(v, name).(type) {
	case bool:
		return value
	case string:
		return value != ""
	default:
		return false
	}
}

func stringOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Named gives a function token a stable name. The name replaces the source
// position of the function in the definition's identity, so renaming or
// moving the function does not change the generated class name. Two functions
// of the same kind under the same name yield the same identity. Non-function
// tokens are returned unchanged.
func Named(name string, fn Token) Token {
	if kindOf(fn) == notFunc {
		return fn
	}
	return named{name: name, fn: fn}
}

type named struct {
	name string
	fn   Token
}

type funcKind int

const (
	notFunc funcKind = iota
	factoryFunc
	propsFunc
	directiveFunc
	otherFunc
)

func (k funcKind) String() string {
	switch k {
	case factoryFunc:
		return "factory"
	case propsFunc:
		return "props"
	case directiveFunc:
		return "directive"
	case otherFunc:
		return "func"
	default:
		return ""
	}
}

// kindOf classifies a token by its function shape.
func kindOf(token Token) funcKind {
	kind, _ := classify(token)
	return kind
}

// classify normalizes the accepted function shapes to StyleFactory, PropsFunc
// or Directive. Function values of any other signature report otherFunc and
// are passed through to the styling function as they are.
func classify(token Token) (funcKind, Token) {
	switch fn := token.(type) {
	case StyleFactory:
		return factoryFunc, fn
	case func(Values, *Context) Token:
		return factoryFunc, StyleFactory(fn)
	case PropsFunc:
		return propsFunc, fn
	case func(Values) Token:
		return propsFunc, PropsFunc(fn)
	case func() Token:
		return propsFunc, PropsFunc(func(Values) Token { return fn() })
	case Directive:
		return directiveFunc, fn
	case func(*Context) Token:
		return directiveFunc, Directive(fn)
	case named:
		return classify(fn.fn)
	}
	if isFunc(token) {
		return otherFunc, token
	}
	return notFunc, token
}
