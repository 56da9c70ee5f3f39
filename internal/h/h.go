// Package h is a minimal rendering primitive for styled definitions: it
// builds element descriptors and renders them to static HTML.
package h

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yacobolo/styled"
)

// maxDepth bounds component expansion.
const maxDepth = 64

// ErrTooDeep is returned for component trees that do not bottom out.
var ErrTooDeep = errors.New("component tree too deep")

// Element describes one node: Type is a tag name or a Component.
type Element struct {
	Type     any
	Props    styled.Props
	Children []any
}

// Component is anything that renders properties to a node, such as a
// *styled.Definition.
type Component interface {
	Render(props styled.Props) any
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(props styled.Props) any

// Render implements Component.
func (f ComponentFunc) Render(props styled.Props) any { return f(props) }

// CreateElement is a styled.Pragma.
func CreateElement(typ any, props styled.Props, children ...any) any {
	return &Element{Type: typ, Props: props, Children: children}
}

// Ref receives the element rendered by a definition bound with ForwardRef.
type Ref struct {
	Current *Element
}

// ForwardRef is a styled.ForwardRef capability that fills a *Ref.
func ForwardRef(render styled.RenderFunc) styled.RenderFunc {
	return func(props styled.Props, ref any) any {
		out := render(props, ref)
		if r, ok := ref.(*Ref); ok {
			if el, ok := out.(*Element); ok {
				r.Current = el
			}
		}
		return out
	}
}

// RenderToStaticMarkup expands components and renders node to HTML.
// Attributes are written in sorted order.
func RenderToStaticMarkup(node any) (string, error) {
	nodes, err := convert(node, 0)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render %s: %w", describe(n), err)
		}
	}
	return buf.String(), nil
}

func convert(node any, depth int) ([]*html.Node, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	switch n := node.(type) {
	case nil, bool:
		return nil, nil
	case string:
		return []*html.Node{{Type: html.TextNode, Data: n}}, nil
	case int:
		return []*html.Node{{Type: html.TextNode, Data: strconv.Itoa(n)}}, nil
	case float64:
		return []*html.Node{{Type: html.TextNode, Data: strconv.FormatFloat(n, 'f', -1, 64)}}, nil
	case []any:
		var out []*html.Node
		for _, child := range n {
			converted, err := convert(child, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, converted...)
		}
		return out, nil
	case *Element:
		return convertElement(n, depth)
	}
	return nil, fmt.Errorf("cannot render %T", node)
}

func convertElement(el *Element, depth int) ([]*html.Node, error) {
	children := el.Children
	if inline, ok := el.Props["children"]; ok && len(children) == 0 {
		children = []any{inline}
	}

	var component Component
	switch typ := el.Type.(type) {
	case string:
		return convertTag(typ, el.Props, children, depth)
	case Component:
		component = typ
	case func(styled.Props) any:
		component = ComponentFunc(typ)
	default:
		return nil, fmt.Errorf("cannot render element of type %T", el.Type)
	}

	props := el.Props.Clone()
	if len(children) > 0 {
		props["children"] = childrenProp(children)
	}
	return convert(component.Render(props), depth+1)
}

func childrenProp(children []any) any {
	if len(children) == 1 {
		return children[0]
	}
	return children
}

func convertTag(tag string, props styled.Props, children []any, depth int) ([]*html.Node, error) {
	if tag == "" {
		return nil, errors.New("empty tag name")
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attributes(props),
	}
	for _, child := range children {
		converted, err := convert(child, depth+1)
		if err != nil {
			return nil, err
		}
		for _, c := range converted {
			n.AppendChild(c)
		}
	}
	return []*html.Node{n}, nil
}

var renamed = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

var skipped = map[string]bool{
	"children": true,
	"ref":      true,
	"key":      true,
	"as":       true,
}

func attributes(props styled.Props) []html.Attribute {
	keys := make([]string, 0, len(props))
	for key := range props {
		if !skipped[key] {
			keys = append(keys, key)
		}
	}

	attrs := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		value, ok := attributeValue(props[key])
		if !ok {
			continue
		}
		name := key
		if r, ok := renamed[key]; ok {
			name = r
		}
		attrs = append(attrs, html.Attribute{Key: name, Val: value})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	return attrs
}

func attributeValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
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

func describe(n *html.Node) string {
	if n.Type == html.ElementNode {
		return "<" + n.Data + ">"
	}
	return "node"
}
