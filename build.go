package styled

import (
	"sync"
	"sync/atomic"
)

// evaluator computes the dynamic part of a class string for one render.
type evaluator func(p Props) string

// interpolation resolves one token position for one render.
type interpolation func(p Props, ctx *Context) Token

// build prepares the evaluation of tokens against s. Token lists without
// functions are compiled once; otherwise every function position is
// classified here and re-evaluated on each render.
func build(s Styler, tokens []Token) evaluator {
	if !hasFunctions(tokens) {
		static := &staticClass{}
		return func(Props) string {
			return static.get(s, tokens)
		}
	}

	interpolations := make([]interpolation, len(tokens))
	for i, token := range tokens {
		interpolations[i] = interpolate(token)
	}

	return func(p Props) string {
		ctx := resolveContext(s)

		resolved := make([]Token, len(interpolations))
		for i, interp := range interpolations {
			resolved[i] = interp(p, ctx)
		}
		return s.Style(resolved...)
	}
}

// staticClass memoises the class string of a token list without functions.
// It is stored only after the styler returns, so a panicking call is retried
// on the next render.
type staticClass struct {
	done   atomic.Bool
	mu     sync.Mutex
	result string
}

func (c *staticClass) get(s Styler, tokens []Token) string {
	if c.done.Load() {
		return c.result
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done.Load() {
		c.result = s.Style(tokens...)
		c.done.Store(true)
	}
	return c.result
}

func hasFunctions(tokens []Token) bool {
	for _, token := range tokens {
		if kindOf(token) != notFunc {
			return true
		}
	}
	return false
}

func interpolate(token Token) interpolation {
	kind, fn := classify(token)

	switch kind {
	case factoryFunc:
		factory := fn.(StyleFactory)
		return func(p Props, resolved *Context) Token {
			return Directive(func(ctx *Context) Token {
				return factory(p, contextOr(ctx, resolved))
			})
		}

	case propsFunc:
		callback := fn.(PropsFunc)
		return func(p Props, resolved *Context) Token {
			out := speculate(callback, p)
			if out.kind == literalToken {
				return out.token
			}
			return Directive(func(ctx *Context) Token {
				return callback(contextOr(ctx, resolved))
			})
		}

	case directiveFunc, otherFunc:
		return func(Props, *Context) Token {
			return fn
		}

	default:
		return func(Props, *Context) Token {
			return token
		}
	}
}

// contextOr prefers the context supplied by the styling function and falls
// back to the resolved one for stylers that pass none.
func contextOr(ctx, fallback *Context) *Context {
	if ctx != nil {
		return ctx
	}
	return fallback
}

type outcomeKind int

const (
	// literalToken: the callback's return value is the token.
	literalToken outcomeKind = iota
	// deferToEngine: the callback is an inline plugin for the styling function.
	deferToEngine
)

type outcome struct {
	kind  outcomeKind
	token Token
}

// speculate runs callback against an audited view of p. Reading a reserved
// accessor that p lacks turns the call into an inline plugin; a panic raised
// after such a read belongs to the abandoned evaluation and is dropped.
func speculate(callback PropsFunc, p Props) (out outcome) {
	view := &auditView{props: p}

	defer func() {
		if view.reserved == "" {
			return
		}
		_ = recover()
		out = outcome{kind: deferToEngine}
	}()

	return outcome{kind: literalToken, token: callback(view)}
}

// auditView records the first reserved accessor read that the real
// properties cannot satisfy.
type auditView struct {
	props    Props
	reserved string
}

func (v *auditView) Lookup(name string) (any, bool) {
	if v.reserved != "" {
		return nil, false
	}
	value, ok := v.props[name]
	if !ok && isReserved(name) {
		v.reserved = name
	}
	return value, ok
}
