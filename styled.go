// Package styled binds style tokens to a rendering primitive and produces
// reusable definitions with stable, content-derived class names.
//
// Styling is delegated to a Styler (e.g. a Tailwind-style engine that
// compiles tokens into class names and injects rules) and rendering to a
// Pragma (e.g. a function building element descriptors). This package decides
// how each token is evaluated at render time, derives the identifier of every
// definition and assembles the final properties.
//
// # Definitions
//
// Bind a rendering primitive once, then declare definitions:
//
//	styled.BindPragma(h.CreateElement, engine)
//
//	Title := styled.New("h1", "text-5xl font-bold")
//	Button := styled.MustTag("button")(styled.PropsFunc(func(p styled.Values) styled.Token {
//		if styled.Bool(p, "primary") {
//			return "text(purple-600)"
//		}
//		return "text(indigo-500)"
//	}))
//
//	Title.Render(styled.Props{"class": "hero"})
//	// className: "hero tw-f55wom text-5xl font-bold"
//
// # Tokens
//
// Strings, nested token lists and style objects are handed to the styling
// function untouched. Functions are classified once per definition:
//
//   - StyleFactory (props and context) is always resolved by the styling
//     function, inside its own context.
//   - PropsFunc (props only) is run speculatively on every render. When it
//     reads "tw", "theme" or "tag" and the properties lack that name, it is
//     treated as an inline plugin and handed to the styling function instead.
//   - Directive is an engine-native token and passes through as is.
//
// # Identity
//
// A definition's identifier hashes the host and the tokens. Function tokens
// contribute the file and line of their literal, or only the name given with
// Named. String returns
// the identifier as a selector so a definition can be referenced from the
// styles of another one.
//
// # Bindings
//
// The package-level functions use the process-wide default binding, which
// Bind and BindPragma layer over and Reset restores. With and WithPragma
// return independent entry points.
package styled

import "sync"

// Styled is an entry point for creating definitions. The zero value uses the
// process-wide default binding.
type Styled struct {
	binding *Binding

	tagsOnce sync.Once
	tags     map[string]TagFunc
}

// Partial creates a definition from tokens supplied later.
type Partial func(tokens ...Token) *Definition

var std = &Styled{}

func (s *Styled) current() Binding {
	if s.binding != nil {
		return *s.binding
	}
	return Default()
}

// Binding returns the binding New and Of use at this moment.
func (s *Styled) Binding() Binding {
	return s.current()
}

// New creates a definition of host with tokens. host is a tag name, a
// *Definition or a component understood by the rendering primitive.
func (s *Styled) New(host any, tokens ...Token) *Definition {
	return create(s.current(), host, tokens)
}

// Of returns a Partial for host. The binding is captured now.
func (s *Styled) Of(host any) Partial {
	b := s.current()
	return func(tokens ...Token) *Definition {
		return create(b, host, tokens)
	}
}

// New creates a definition with the default binding.
func New(host any, tokens ...Token) *Definition {
	return std.New(host, tokens...)
}

// Of returns a Partial for host with the default binding.
func Of(host any) Partial {
	return std.Of(host)
}
