package styled_test

import (
	"fmt"
	"strings"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/h"
	"github.com/yacobolo/styled/internal/tw"
)

func Example() {
	s := styled.With(styled.Binding{
		CreateElement: h.CreateElement,
		TW:            tw.New(tw.Config{}),
	})

	title := s.New("h1", "text-5xl font-bold")
	markup, err := h.RenderToStaticMarkup(title.Render(styled.Props{"class": "hero", "children": "Hello"}))
	if err != nil {
		panic(err)
	}

	fmt.Println(markup)
	fmt.Println(title.DisplayName(), title)
	// Output:
	// <h1 class="hero tw-f55wom text-5xl font-bold">Hello</h1>
	// Styled(h1) .tw-f55wom
}

func ExampleStyled_MustTag() {
	s := styled.With(styled.Binding{
		CreateElement: h.CreateElement,
		TW:            tw.New(tw.Config{}),
	})

	button := s.MustTag("button")("px-4", styled.PropsFunc(func(p styled.Values) styled.Token {
		if styled.Bool(p, "primary") {
			return "bg-purple-600"
		}
		return "bg-gray-200"
	}))

	markup, _ := h.RenderToStaticMarkup(button.Render(styled.Props{"primary": false, "as": "a", "href": "/"}))
	fmt.Println(strings.Replace(markup, button.ID(), "ID", 1))
	// Output:
	// <a class="ID px-4 bg-gray-200" href="/"></a>
}
