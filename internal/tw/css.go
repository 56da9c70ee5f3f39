package tw

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CSS is a style object. Keys are property names (kebab or camel case) or
// nested blocks:
//
//	"&:hover", "& > svg"  selectors relative to the generated class
//	"@media ..."          an at-rule wrapping the nested block
//	"@apply"              utility classes whose declarations are merged in
//
// Other keys with object values are descendant selectors.
type CSS map[string]any

// Declarations is an inline declaration block, e.g. "color:red;padding:4px".
type Declarations string

// ParseDeclarations parses an inline declaration block.
func ParseDeclarations(text string) ([]Declaration, error) {
	p := css.NewParser(parse.NewInputString(text), true)

	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse declarations: %w", err)
			}
			return decls, nil
		case css.CommentGrammar:
			continue
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			var value strings.Builder
			for _, v := range p.Values() {
				value.Write(v.Data)
			}
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    strings.TrimSpace(value.String()),
			})
		default:
			return nil, fmt.Errorf("parse declarations: unexpected %s %q", gt, string(data))
		}
	}
}

// object converts parsed declarations to a style object.
func (d Declarations) object() (CSS, error) {
	decls, err := ParseDeclarations(string(d))
	if err != nil {
		return nil, err
	}
	obj := make(CSS, len(decls))
	for _, decl := range decls {
		obj[decl.Property] = decl.Value
	}
	return obj, nil
}

// rule is one style rule, optionally nested in at-rules.
type rule struct {
	wrappers []string
	selector string
	decls    []Declaration
}

func (r rule) String() string {
	parts := make([]string, len(r.decls))
	for i, d := range r.decls {
		parts[i] = d.String()
	}
	text := r.selector + "{" + strings.Join(parts, ";") + "}"
	for i := len(r.wrappers) - 1; i >= 0; i-- {
		text = r.wrappers[i] + "{" + text + "}"
	}
	return text
}

// objectRules flattens obj into rules for selector. Keys are visited in
// sorted order; declarations of one block form one rule placed before the
// rules of its nested blocks.
func (e *Engine) objectRules(selector string, wrappers []string, obj map[string]any) ([]rule, error) {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var (
		decls  []Declaration
		nested []rule
	)
	for _, key := range keys {
		value := obj[key]

		if key == "@apply" {
			applied, err := e.apply(value)
			if err != nil {
				return nil, err
			}
			decls = append(decls, applied...)
			continue
		}

		if block, ok := asObject(value); ok {
			var (
				rules []rule
				err   error
			)
			switch {
			case strings.HasPrefix(key, "@"):
				rules, err = e.objectRules(selector, append(clip(wrappers), key), block)
			case strings.Contains(key, "&"):
				rules, err = e.objectRules(strings.ReplaceAll(key, "&", selector), wrappers, block)
			default:
				rules, err = e.objectRules(selector+" "+key, wrappers, block)
			}
			if err != nil {
				return nil, err
			}
			nested = append(nested, rules...)
			continue
		}

		text, ok := cssValue(value)
		if !ok {
			return nil, fmt.Errorf("unsupported value for %q: %T", key, value)
		}
		decls = append(decls, Declaration{Property: kebab(key), Value: text})
	}

	if len(decls) == 0 {
		return nested, nil
	}
	return append([]rule{{wrappers: wrappers, selector: selector, decls: decls}}, nested...), nil
}

func (e *Engine) apply(value any) ([]Declaration, error) {
	classes, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("@apply expects a string, got %T", value)
	}
	var out []Declaration
	for _, class := range expand(classes) {
		_, base := splitVariants(class)
		decls, ok := resolve(e.theme, base)
		if !ok {
			return nil, fmt.Errorf("@apply: unknown utility %q", class)
		}
		out = append(out, decls...)
	}
	return out, nil
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case CSS:
		return v, true
	case map[string]any:
		return v, true
	}
	return nil, false
}

func cssValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// kebab converts "backgroundColor" to "background-color". Custom properties
// are kept as they are.
func kebab(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	var b strings.Builder
	for _, r := range property {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func clip(s []string) []string {
	return s[:len(s):len(s)]
}
