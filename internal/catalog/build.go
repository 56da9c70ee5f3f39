package catalog

import (
	"fmt"
	"strings"

	"github.com/yacobolo/styled"
)

// Catalog holds the definitions built from one or more files.
type Catalog struct {
	defs       map[string]*styled.Definition
	components map[string]Component
	files      map[string]string
	order      []string
}

// Build creates a definition for every component of files through s.
// Components may reference components of any of the files.
func Build(s *styled.Styled, files ...*File) (*Catalog, error) {
	c := &Catalog{
		defs:       make(map[string]*styled.Definition),
		components: make(map[string]Component),
		files:      make(map[string]string),
	}

	for _, file := range files {
		for _, comp := range file.Components {
			if previous, ok := c.files[comp.Name]; ok {
				return nil, &DefinitionError{
					Path:      file.Path,
					Line:      comp.line,
					Component: comp.Name,
					Message:   fmt.Sprintf("already defined in %s", previous),
				}
			}
			c.components[comp.Name] = comp
			c.files[comp.Name] = file.Path
			c.order = append(c.order, comp.Name)
		}
	}

	b := &builder{catalog: c, styled: s, state: make(map[string]visitState)}
	for _, name := range c.order {
		if _, err := b.define(name, nil); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

type builder struct {
	catalog *Catalog
	styled  *styled.Styled
	state   map[string]visitState
}

func (b *builder) define(name string, path []string) (*styled.Definition, error) {
	switch b.state[name] {
	case visited:
		return b.catalog.defs[name], nil
	case visiting:
		cycle := append(path, name)
		comp := b.catalog.components[name]
		return nil, &DefinitionError{
			Path:      b.catalog.files[name],
			Line:      comp.line,
			Component: name,
			Field:     "host",
			Message:   "reference cycle: " + strings.Join(cycle, " -> "),
		}
	}

	comp := b.catalog.components[name]
	b.state[name] = visiting

	var host any = comp.Host
	if ref, ok := comp.Ref(); ok {
		if _, known := b.catalog.components[ref]; !known {
			return nil, &DefinitionError{
				Path:      b.catalog.files[name],
				Line:      comp.line,
				Component: name,
				Field:     "host",
				Message:   fmt.Sprintf("unknown component %q", ref),
			}
		}
		inner, err := b.define(ref, append(path, name))
		if err != nil {
			return nil, err
		}
		host = inner
	}

	tokens := make([]styled.Token, len(comp.Tokens))
	for i, raw := range comp.Tokens {
		token, err := convertToken(raw)
		if err != nil {
			return nil, &DefinitionError{
				Path:      b.catalog.files[name],
				Line:      comp.line,
				Component: name,
				Field:     fmt.Sprintf("tokens[%d]", i),
				Message:   err.Error(),
				Err:       err,
			}
		}
		tokens[i] = token
	}

	def := b.styled.New(host, tokens...)
	if len(comp.Defaults) > 0 {
		def = def.WithDefaultProps(styled.Props(comp.Defaults))
	}

	b.catalog.defs[name] = def
	b.state[name] = visited
	return def, nil
}

// Get returns the definition named name.
func (c *Catalog) Get(name string) (*styled.Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Component returns the source of the definition named name.
func (c *Catalog) Component(name string) (Component, bool) {
	comp, ok := c.components[name]
	return comp, ok
}

// Names returns the component names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.order) }
