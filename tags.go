package styled

import (
	"fmt"
	"sort"
	"sync"
)

// TagFunc creates a definition for one tag name.
type TagFunc func(tokens ...Token) *Definition

// tagNames is the tag vocabulary: HTML elements followed by SVG elements.
var tagNames = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "big", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd", "keygen",
	"label", "legend", "li", "link",
	"main", "map", "mark", "marquee", "menu", "menuitem", "meta", "meter",
	"nav", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "pre", "progress",
	"q",
	"rp", "rt", "ruby",
	"s", "samp", "script", "section", "select", "small", "source", "span",
	"strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "textarea", "tfoot", "th", "thead", "time", "title", "tr", "track",
	"u", "ul",
	"var", "video",
	"wbr",

	"circle", "clipPath", "defs", "ellipse", "foreignObject", "g", "image",
	"line", "linearGradient", "mask", "path", "pattern", "polygon", "polyline",
	"radialGradient", "rect", "stop", "svg", "text", "tspan",
}

// bindName is never a tag; it stays reserved for the binding operations.
const bindName = "bind"

var (
	vocabularyMu sync.RWMutex
	vocabulary   = newVocabulary(tagNames)
)

func newVocabulary(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}

// RegisterTags extends the tag vocabulary, e.g. with custom elements.
// Entry points whose tag table was already built do not see the new names.
func RegisterTags(names ...string) {
	vocabularyMu.Lock()
	defer vocabularyMu.Unlock()
	for _, name := range names {
		if name == "" || name == bindName {
			continue
		}
		vocabulary[name] = struct{}{}
	}
}

// Tags returns the tag vocabulary in sorted order.
func Tags() []string {
	vocabularyMu.RLock()
	defer vocabularyMu.RUnlock()

	names := make([]string, 0, len(vocabulary))
	for name := range vocabulary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTag reports whether name is in the tag vocabulary.
func IsTag(name string) bool {
	vocabularyMu.RLock()
	defer vocabularyMu.RUnlock()
	_, ok := vocabulary[name]
	return ok
}

// table builds the tag table of s on first use.
func (s *Styled) table() map[string]TagFunc {
	s.tagsOnce.Do(func() {
		names := Tags()
		s.tags = make(map[string]TagFunc, len(names))
		for _, name := range names {
			tag := name
			s.tags[tag] = func(tokens ...Token) *Definition {
				return s.New(tag, tokens...)
			}
		}
	})
	return s.tags
}

// Tag returns the shorthand for name, equivalent to s.New(name, tokens...).
// It reports false for names outside the vocabulary.
func (s *Styled) Tag(name string) (TagFunc, bool) {
	fn, ok := s.table()[name]
	return fn, ok
}

// MustTag is like Tag but panics for names outside the vocabulary.
func (s *Styled) MustTag(name string) TagFunc {
	fn, ok := s.Tag(name)
	if !ok {
		panic(fmt.Sprintf("styled: unknown tag %q", name))
	}
	return fn
}

// Tag returns the shorthand for name on the default entry point.
func Tag(name string) (TagFunc, bool) {
	return std.Tag(name)
}

// MustTag returns the shorthand for name on the default entry point and
// panics for names outside the vocabulary.
func MustTag(name string) TagFunc {
	return std.MustTag(name)
}
