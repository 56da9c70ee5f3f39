package tw

import (
	"strconv"
	"strings"
)

// Declaration is one CSS property and its value.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string { return d.Property + ":" + d.Value }

func decl(property, value string) []Declaration {
	return []Declaration{{Property: property, Value: value}}
}

var staticUtilities = map[string][]Declaration{
	"block":           decl("display", "block"),
	"inline":          decl("display", "inline"),
	"inline-block":    decl("display", "inline-block"),
	"flex":            decl("display", "flex"),
	"inline-flex":     decl("display", "inline-flex"),
	"grid":            decl("display", "grid"),
	"hidden":          decl("display", "none"),
	"flex-row":        decl("flex-direction", "row"),
	"flex-col":        decl("flex-direction", "column"),
	"flex-wrap":       decl("flex-wrap", "wrap"),
	"items-center":    decl("align-items", "center"),
	"items-start":     decl("align-items", "flex-start"),
	"items-end":       decl("align-items", "flex-end"),
	"justify-center":  decl("justify-content", "center"),
	"justify-between": decl("justify-content", "space-between"),
	"relative":        decl("position", "relative"),
	"absolute":        decl("position", "absolute"),
	"underline":       decl("text-decoration-line", "underline"),
	"no-underline":    decl("text-decoration-line", "none"),
	"italic":          decl("font-style", "italic"),
	"uppercase":       decl("text-transform", "uppercase"),
	"lowercase":       decl("text-transform", "lowercase"),
	"capitalize":      decl("text-transform", "capitalize"),
	"cursor-pointer":  decl("cursor", "pointer"),
	"truncate": {
		{Property: "overflow", Value: "hidden"},
		{Property: "text-overflow", Value: "ellipsis"},
		{Property: "white-space", Value: "nowrap"},
	},
	"sr-only": {
		{Property: "position", Value: "absolute"},
		{Property: "width", Value: "1px"},
		{Property: "height", Value: "1px"},
		{Property: "overflow", Value: "hidden"},
	},
}

var textAlign = map[string]bool{"left": true, "center": true, "right": true, "justify": true}

type utility struct {
	prefix  string
	resolve func(t Theme, value string) ([]Declaration, bool)
}

// utilities is searched in order; the first matching prefix wins, so longer
// prefixes come first.
var utilities = []utility{
	{"text-", func(t Theme, v string) ([]Declaration, bool) {
		if textAlign[v] {
			return decl("text-align", v), true
		}
		if size, ok := t.lookup("fontSize", v); ok {
			return fontSize(size), true
		}
		return themed(t, "colors", v, "color")
	}},
	{"bg-", func(t Theme, v string) ([]Declaration, bool) {
		return themed(t, "colors", v, "background-color")
	}},
	{"border-", func(t Theme, v string) ([]Declaration, bool) {
		if width, ok := t.lookup("borderWidth", v); ok {
			return decl("border-width", width), true
		}
		return themed(t, "colors", v, "border-color")
	}},
	{"font-", func(t Theme, v string) ([]Declaration, bool) {
		if family, ok := t.lookup("fontFamily", v); ok {
			return decl("font-family", family), true
		}
		return themed(t, "fontWeight", v, "font-weight")
	}},
	{"rounded-", func(t Theme, v string) ([]Declaration, bool) {
		return themed(t, "borderRadius", v, "border-radius")
	}},
	{"opacity-", func(_ Theme, v string) ([]Declaration, bool) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return nil, false
		}
		return decl("opacity", strconv.FormatFloat(float64(n)/100, 'f', -1, 64)), true
	}},
	{"px-", spacing("padding-left", "padding-right")},
	{"py-", spacing("padding-top", "padding-bottom")},
	{"pt-", spacing("padding-top")},
	{"pr-", spacing("padding-right")},
	{"pb-", spacing("padding-bottom")},
	{"pl-", spacing("padding-left")},
	{"p-", spacing("padding")},
	{"mx-", spacing("margin-left", "margin-right")},
	{"my-", spacing("margin-top", "margin-bottom")},
	{"mt-", spacing("margin-top")},
	{"mr-", spacing("margin-right")},
	{"mb-", spacing("margin-bottom")},
	{"ml-", spacing("margin-left")},
	{"m-", spacing("margin")},
	{"gap-", spacing("gap")},
	{"w-", sizing("width")},
	{"h-", sizing("height")},
}

// unprefixed are utilities whose bare name reads the theme's DEFAULT.
var unprefixed = map[string]utility{
	"rounded": {resolve: func(t Theme, _ string) ([]Declaration, bool) {
		return themed(t, "borderRadius", "", "border-radius")
	}},
	"border": {resolve: func(t Theme, _ string) ([]Declaration, bool) {
		return themed(t, "borderWidth", "", "border-width")
	}},
}

// resolve returns the declarations of a utility class without variants,
// e.g. "text-lg" or "-mt-2".
func resolve(t Theme, base string) ([]Declaration, bool) {
	if decls, ok := staticUtilities[base]; ok {
		return decls, true
	}
	if u, ok := unprefixed[base]; ok {
		return u.resolve(t, "")
	}

	negative := strings.HasPrefix(base, "-")
	name := strings.TrimPrefix(base, "-")

	for _, u := range utilities {
		value, ok := strings.CutPrefix(name, u.prefix)
		if !ok || value == "" {
			continue
		}
		decls, ok := u.resolve(t, value)
		if !ok {
			return nil, false
		}
		if negative {
			return negate(decls)
		}
		return decls, true
	}
	return nil, false
}

func themed(t Theme, section, key, property string) ([]Declaration, bool) {
	if value, ok := arbitrary(key); ok {
		return decl(property, value), true
	}
	value, ok := t.lookup(section, key)
	if !ok {
		return nil, false
	}
	return decl(property, value), true
}

func spacing(properties ...string) func(Theme, string) ([]Declaration, bool) {
	return func(t Theme, key string) ([]Declaration, bool) {
		value, ok := arbitrary(key)
		if !ok {
			if key == "auto" {
				value, ok = "auto", true
			} else {
				value, ok = t.lookup("spacing", key)
			}
		}
		if !ok {
			return nil, false
		}
		out := make([]Declaration, len(properties))
		for i, property := range properties {
			out[i] = Declaration{Property: property, Value: value}
		}
		return out, true
	}
}

func sizing(property string) func(Theme, string) ([]Declaration, bool) {
	fromSpacing := spacing(property)
	return func(t Theme, key string) ([]Declaration, bool) {
		switch key {
		case "full":
			return decl(property, "100%"), true
		case "screen":
			if property == "width" {
				return decl(property, "100vw"), true
			}
			return decl(property, "100vh"), true
		}
		return fromSpacing(t, key)
	}
}

func fontSize(value string) []Declaration {
	size, lineHeight, ok := strings.Cut(value, "/")
	if !ok {
		return decl("font-size", size)
	}
	return []Declaration{
		{Property: "font-size", Value: size},
		{Property: "line-height", Value: lineHeight},
	}
}

// arbitrary unwraps "[value]"; underscores stand for spaces.
func arbitrary(key string) (string, bool) {
	if len(key) < 3 || key[0] != '[' || key[len(key)-1] != ']' {
		return "", false
	}
	return strings.ReplaceAll(key[1:len(key)-1], "_", " "), true
}

func negate(decls []Declaration) ([]Declaration, bool) {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		if !strings.HasPrefix(d.Property, "margin") {
			return nil, false
		}
		out[i] = Declaration{Property: d.Property, Value: "calc(" + d.Value + " * -1)"}
	}
	return out, true
}
