package tw

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/hash"
	"github.com/yacobolo/styled/internal/logger"
)

func newEngine(t *testing.T) (*Engine, *VirtualSheet) {
	t.Helper()
	sheet := NewVirtualSheet()
	return New(Config{Sheet: sheet}), sheet
}

func TestStyleUtilities(t *testing.T) {
	tests := []struct {
		name   string
		tokens []styled.Token
		want   string
		rules  []string
	}{
		{
			name:   "utilities",
			tokens: []styled.Token{"text-sm font-bold"},
			want:   "text-sm font-bold",
			rules: []string{
				".text-sm{font-size:0.875rem;line-height:1.25rem}",
				".font-bold{font-weight:700}",
			},
		},
		{
			name:   "grouping",
			tokens: []styled.Token{"text(purple-600 lg)"},
			want:   "text-purple-600 text-lg",
			rules: []string{
				".text-purple-600{color:#7c3aed}",
				".text-lg{font-size:1.125rem;line-height:1.75rem}",
			},
		},
		{
			name:   "variants",
			tokens: []styled.Token{"sm:hover:underline"},
			want:   "sm:hover:underline",
			rules: []string{
				`@media (min-width:640px){.sm\:hover\:underline:hover{text-decoration-line:underline}}`,
			},
		},
		{
			name:   "pseudo variant after a screen",
			tokens: []styled.Token{"md:focus:underline"},
			want:   "md:focus:underline",
			rules: []string{
				`@media (min-width:768px){.md\:focus\:underline:focus{text-decoration-line:underline}}`,
			},
		},
		{
			name:   "arbitrary values are escaped",
			tokens: []styled.Token{"w-[42px]"},
			want:   "w-[42px]",
			rules:  []string{`.w-\[42px\]{width:42px}`},
		},
		{
			name:   "nested lists and duplicates",
			tokens: []styled.Token{[]styled.Token{"p-2", []string{"p-2 m-1"}}, nil, false, "p-2"},
			want:   "p-2 m-1",
			rules:  []string{".p-2{padding:0.5rem}", ".m-1{margin:0.25rem}"},
		},
		{
			name:   "variant maps",
			tokens: []styled.Token{map[string]styled.Token{"md": "text-lg", "sm": "text-sm", "_": "block"}},
			want:   "block sm:text-sm md:text-lg",
			rules: []string{
				".block{display:block}",
				`@media (min-width:640px){.sm\:text-sm{font-size:0.875rem;line-height:1.25rem}}`,
				`@media (min-width:768px){.md\:text-lg{font-size:1.125rem;line-height:1.75rem}}`,
			},
		},
		{
			name:   "unknown utilities pass through",
			tokens: []styled.Token{"hero tw-1ywwrkz"},
			want:   "hero tw-1ywwrkz",
			rules:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sheet := newEngine(t)
			assert.Equal(t, tt.want, e.Style(tt.tokens...))
			assert.Equal(t, tt.rules, nilIfEmpty(sheet.Rules()))
		})
	}
}

func TestStyleInsertsEachRuleOnce(t *testing.T) {
	e, sheet := newEngine(t)
	e.Style("p-4")
	e.Style("p-4", "sm:p-4")
	e.Style("p-4")
	assert.Equal(t, 2, sheet.Len())
}

func TestStyleObjects(t *testing.T) {
	e, sheet := newEngine(t)
	class := e.Style(CSS{
		"color":           "red",
		"backgroundColor": "white",
		"&:hover":         CSS{"color": "blue"},
		"@media (min-width:640px)": map[string]any{
			"padding": 4,
		},
		"svg": CSS{"width": "1rem"},
	})

	require.True(t, strings.HasPrefix(class, hash.Prefix), class)
	assert.Equal(t, []string{
		"." + class + "{background-color:white;color:red}",
		"." + class + ":hover{color:blue}",
		"@media (min-width:640px){." + class + "{padding:4}}",
		"." + class + " svg{width:1rem}",
	}, sheet.Rules())

	assert.Equal(t, class, e.Style(CSS{"color": "red", "backgroundColor": "white", "&:hover": CSS{"color": "blue"},
		"@media (min-width:640px)": map[string]any{"padding": 4}, "svg": CSS{"width": "1rem"}}))
	assert.Equal(t, 4, sheet.Len())
}

func TestStyleObjectVariantsChangeTheClass(t *testing.T) {
	e, sheet := newEngine(t)
	obj := CSS{"color": "red"}

	plain := e.Style(obj)
	hovered := e.Style(map[string]styled.Token{"hover": obj})
	assert.NotEqual(t, plain, hovered)
	assert.Contains(t, sheet.Rules(), "."+hovered+":hover{color:red}")
}

func TestStyleObjectStackedVariants(t *testing.T) {
	e, sheet := newEngine(t)

	class := e.Style(map[string]styled.Token{"sm": map[string]styled.Token{"focus": CSS{"color": "red"}}})
	require.NotEmpty(t, class)
	assert.Equal(t, []string{
		"@media (min-width:640px){." + class + ":focus{color:red}}",
	}, sheet.Rules())
}

func TestStyleApply(t *testing.T) {
	e, sheet := newEngine(t)
	class := e.Style(CSS{"@apply": "font-bold text-sm", "color": "red"})
	assert.Equal(t, []string{
		"." + class + "{font-weight:700;font-size:0.875rem;line-height:1.25rem;color:red}",
	}, sheet.Rules())
}

func TestStyleInvalidObject(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	e := New(Config{Logger: log})
	assert.Equal(t, "", e.Style(CSS{"@apply": "no-such-utility"}))
	assert.Contains(t, buf.String(), "invalid style object")
	assert.Contains(t, buf.String(), `"component":"tw"`)
}

func TestStyleDeclarations(t *testing.T) {
	e, sheet := newEngine(t)
	class := e.Style(Declarations("color: red; padding: 4px"))
	assert.Equal(t, []string{"." + class + "{color:red;padding:4px}"}, sheet.Rules())
	assert.Equal(t, class, e.Style(CSS{"color": "red", "padding": "4px"}))
}

func TestStyleFunctions(t *testing.T) {
	e, _ := newEngine(t)

	assert.Equal(t, "p-4", e.Style(styled.Directive(func(ctx *styled.Context) styled.Token {
		return ctx.TW("p-4")
	})))
	assert.Equal(t, "text-purple-600", e.Style(styled.PropsFunc(func(p styled.Values) styled.Token {
		theme := styled.Get(p, "theme").(styled.ThemeFunc)
		if theme("colors", "purple", "600") != nil {
			return "text-purple-600"
		}
		return ""
	})))
	assert.Equal(t, "m-2", e.Style(styled.StyleFactory(func(p styled.Values, ctx *styled.Context) styled.Token {
		return "m-" + styled.String(p, "missing") + "2"
	})))
}

func TestEngineContext(t *testing.T) {
	e, _ := newEngine(t)
	ctx := e.Context()

	assert.Equal(t, "1rem", ctx.Theme("spacing", "4"))
	assert.Equal(t, "card", ctx.Tag("card"))
	assert.Equal(t, "p-4", ctx.TW("p-4"))

	hashed := New(Config{HashTags: true}).Context()
	assert.Equal(t, hash.Cyrb32("card"), hashed.Tag("card"))
}

func TestEngineWithStyled(t *testing.T) {
	e, sheet := newEngine(t)
	var got styled.Props
	s := styled.With(styled.Binding{
		CreateElement: func(_ any, props styled.Props, _ ...any) any {
			got = props
			return nil
		},
		TW: e,
	})

	button := s.New("button", "px-2", styled.PropsFunc(func(p styled.Values) styled.Token {
		if styled.Bool(p, "primary") {
			return "text(purple-600)"
		}
		return styled.Get(p, "tw").(styled.StyleFunc)("text-gray-500")
	}))

	button.Render(styled.Props{"primary": true})
	assert.Equal(t, button.ID()+" px-2 text-purple-600", got["className"])

	button.Render(styled.Props{})
	assert.Equal(t, button.ID()+" px-2 text-gray-500", got["className"])
	assert.Contains(t, sheet.Rules(), ".text-gray-500{color:#6b7280}")
}

func TestStyleConcurrent(t *testing.T) {
	e, sheet := newEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "p-2 sm:p-4 text-red-500", e.Style("p-2 sm:p-4", "text-red-500"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, sheet.Len())
}

func nilIfEmpty(rules []string) []string {
	if len(rules) == 0 {
		return nil
	}
	return rules
}
