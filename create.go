package styled

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// Pragma is the rendering primitive: it turns a type and properties into a
// renderable result, e.g. an element descriptor.
type Pragma func(typ any, props Props, children ...any) any

// RenderFunc renders a styled definition. ref is the caller's ref when a
// ForwardRef capability is bound and nil otherwise.
type RenderFunc func(props Props, ref any) any

// ForwardRef wraps a RenderFunc so that it receives the caller's ref.
type ForwardRef func(render RenderFunc) RenderFunc

// DisplayNamer is implemented by components that carry a display name.
type DisplayNamer interface {
	DisplayName() string
}

// DefaultPropser is implemented by components that carry default properties.
type DefaultPropser interface {
	DefaultProps() Props
}

// Definition is a host type bound to a list of tokens. It is immutable and
// safe for concurrent use.
//
// Its identifier is derived from the host and the tokens alone, so declaring
// the same definition twice yields the same class name. String returns the
// identifier as a selector, which lets other definitions target it.
type Definition struct {
	id           string
	displayName  string
	host         any
	defaultProps Props
	render       RenderFunc
}

func create(b Binding, host any, tokens []Token) *Definition {
	b = complete(b)

	id := b.Hash(canonical(host, tokens))
	evaluate := build(b.TW, tokens)
	createElement := b.CreateElement
	forwardRef := b.ForwardRef
	_, isTag := host.(string)

	render := RenderFunc(func(props Props, ref any) any {
		as, hasAs := props["as"]
		class := props["class"]
		delete(props, "as")
		delete(props, "class")

		props["className"] = joinClassNames(
			classSegment(class),
			classSegment(props["className"]),
			id,
			evaluate(props),
		)

		if forwardRef != nil {
			props["ref"] = ref
		}

		typ := host
		if isTag {
			if hasAs && as != nil && as != "" {
				typ = as
			}
		} else if hasAs {
			props["as"] = as
		}

		return createElement(typ, props)
	})

	if forwardRef != nil {
		render = forwardRef(render)
	}

	return &Definition{
		id:           id,
		displayName:  "Styled(" + hostName(host) + ")",
		host:         host,
		defaultProps: inheritedDefaults(host),
		render:       render,
	}
}

// joinClassNames joins the non-empty segments with single spaces. className
// is skipped when it repeats class.
func joinClassNames(class, className, id, dynamic string) string {
	segments := make([]string, 0, 4)
	for i, segment := range []string{class, className, id, dynamic} {
		if segment == "" || (i == 1 && segment == class) {
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, " ")
}

// classSegment converts a class or className prop to text. Falsy values
// (nil, false, zero and NaN numbers, "") are empty.
func classSegment(value any) string {
	if value == nil {
		return ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		if !rv.Bool() {
			return ""
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.IsZero() {
			return ""
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f == 0 || math.IsNaN(f) {
			return ""
		}
	}
	return stringOf(value)
}

func hostName(host any) string {
	switch h := host.(type) {
	case string:
		if h != "" {
			return h
		}
	case DisplayNamer:
		if name := h.DisplayName(); name != "" {
			return name
		}
	default:
		if name := funcName(host); name != "" {
			return name[strings.LastIndex(name, ".")+1:]
		}
	}
	return "Component"
}

func inheritedDefaults(host any) Props {
	if p, ok := host.(DefaultPropser); ok {
		if defaults := p.DefaultProps(); len(defaults) > 0 {
			return defaults
		}
	}
	return nil
}

// ID returns the identifier, e.g. "tw-oog4p9".
func (d *Definition) ID() string { return d.id }

// DisplayName returns a label of the form "Styled(h1)".
func (d *Definition) DisplayName() string { return d.displayName }

// Host returns the host type: a tag name, a *Definition or a component.
func (d *Definition) Host() any { return d.host }

// DefaultProps returns a copy of the default properties, or nil.
func (d *Definition) DefaultProps() Props {
	if d.defaultProps == nil {
		return nil
	}
	return d.defaultProps.Clone()
}

// WithDefaultProps returns a copy of d whose defaults are d's defaults
// overlaid with props. The identifier is unchanged.
func (d *Definition) WithDefaultProps(props Props) *Definition {
	out := *d
	out.defaultProps = d.DefaultProps()
	if out.defaultProps == nil {
		out.defaultProps = make(Props, len(props))
	}
	for k, v := range props {
		out.defaultProps[k] = v
	}
	return &out
}

// Render renders d with props. props is not modified.
func (d *Definition) Render(props Props) any {
	return d.RenderRef(props, nil)
}

// RenderRef renders d with props and a ref for the bound ForwardRef
// capability. props is not modified.
func (d *Definition) RenderRef(props Props, ref any) any {
	merged := props.Clone()
	for k, v := range d.defaultProps {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return d.render(merged, ref)
}

// String returns the identifier as a class selector, e.g. ".tw-oog4p9".
func (d *Definition) String() string { return "." + d.id }

// MarshalText implements encoding.TextMarshaler.
func (d *Definition) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements json.Marshaler.
func (d *Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
