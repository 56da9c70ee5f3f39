package h

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/styled"
)

func TestRenderToStaticMarkup(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{
			name: "sorted attributes",
			node: CreateElement("div", styled.Props{"id": "x", "className": "a b", "data-n": 3}, "hi"),
			want: `<div class="a b" data-n="3" id="x">hi</div>`,
		},
		{
			name: "text is escaped",
			node: CreateElement("p", nil, "<b> & co"),
			want: `<p>&lt;b&gt; &amp; co</p>`,
		},
		{
			name: "boolean attributes",
			node: CreateElement("button", styled.Props{"disabled": true, "hidden": false, "ref": "r", "key": 1}),
			want: `<button disabled=""></button>`,
		},
		{
			name: "void elements",
			node: CreateElement("input", styled.Props{"htmlFor": "x", "type": "text"}),
			want: `<input for="x" type="text"/>`,
		},
		{
			name: "children prop and fragments",
			node: []any{CreateElement("li", styled.Props{"children": "one"}), CreateElement("li", nil, "two", 2)},
			want: `<li>one</li><li>two2</li>`,
		},
		{
			name: "function components",
			node: CreateElement(func(p styled.Props) any {
				return CreateElement("em", nil, p["children"])
			}, nil, "x"),
			want: `<em>x</em>`,
		},
		{
			name: "nothing",
			node: nil,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToStaticMarkup(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderStyledDefinitions(t *testing.T) {
	s := styled.With(styled.Binding{CreateElement: CreateElement})
	span := s.New("span", "text-sm")
	title := s.New(span, "font-bold")

	got, err := RenderToStaticMarkup(title.Render(styled.Props{"children": "Hi", "class": "hero"}))
	require.NoError(t, err)
	assert.Equal(t, `<span class="hero `+title.ID()+` font-bold tw-oog4p9 text-sm">Hi</span>`, got)

	got, err = RenderToStaticMarkup(title.Render(styled.Props{"as": "a", "href": "/"}))
	require.NoError(t, err)
	assert.Equal(t, `<a class="`+title.ID()+` font-bold tw-oog4p9 text-sm" href="/"></a>`, got)
}

func TestForwardRef(t *testing.T) {
	s := styled.With(styled.Binding{CreateElement: CreateElement, ForwardRef: ForwardRef})
	input := s.New("input", "border")

	ref := &Ref{}
	out := input.RenderRef(styled.Props{"type": "email"}, ref)
	require.NotNil(t, ref.Current)
	assert.Same(t, out, ref.Current)
	assert.Equal(t, "input", ref.Current.Type)

	got, err := RenderToStaticMarkup(out)
	require.NoError(t, err)
	assert.Equal(t, `<input class="`+input.ID()+` border" type="email"/>`, got)
}

func TestRenderErrors(t *testing.T) {
	_, err := RenderToStaticMarkup(CreateElement(42, nil))
	assert.ErrorContains(t, err, "cannot render element of type int")

	_, err = RenderToStaticMarkup(struct{}{})
	assert.Error(t, err)

	_, err = RenderToStaticMarkup(CreateElement("", nil))
	assert.Error(t, err)

	var loop ComponentFunc
	loop = func(p styled.Props) any { return CreateElement(loop, p) }
	_, err = RenderToStaticMarkup(CreateElement(loop, nil))
	assert.True(t, errors.Is(err, ErrTooDeep))

	_, err = RenderToStaticMarkup(CreateElement("br", nil, "child"))
	assert.Error(t, err, "void elements cannot have children")
}
