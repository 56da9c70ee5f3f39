package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		base string
		want string
	}{
		{"block", "display:block"},
		{"text-sm", "font-size:0.875rem line-height:1.25rem"},
		{"text-5xl", "font-size:3rem line-height:1"},
		{"text-center", "text-align:center"},
		{"text-purple-600", "color:#7c3aed"},
		{"text-white", "color:#fff"},
		{"bg-indigo-500", "background-color:#6366f1"},
		{"border", "border-width:1px"},
		{"border-2", "border-width:2px"},
		{"border-gray-200", "border-color:#e5e7eb"},
		{"font-bold", "font-weight:700"},
		{"font-mono", "font-family:ui-monospace,monospace"},
		{"rounded", "border-radius:0.25rem"},
		{"rounded-md", "border-radius:0.375rem"},
		{"p-4", "padding:1rem"},
		{"px-2", "padding-left:0.5rem padding-right:0.5rem"},
		{"mx-auto", "margin-left:auto margin-right:auto"},
		{"-mt-2", "margin-top:calc(0.5rem * -1)"},
		{"w-full", "width:100%"},
		{"h-screen", "height:100vh"},
		{"w-[42px]", "width:42px"},
		{"bg-[rgb(0_0_0)]", "background-color:rgb(0 0 0)"},
		{"opacity-50", "opacity:0.5"},
		{"truncate", "overflow:hidden text-overflow:ellipsis white-space:nowrap"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			decls, ok := resolve(theme, tt.base)
			require.True(t, ok)
			assert.Equal(t, tt.want, join(decls))
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	theme := DefaultTheme()
	for _, base := range []string{"", "tw-1ywwrkz", "text-chartreuse", "-p-2", "opacity-150", "p-", "hover"} {
		_, ok := resolve(theme, base)
		assert.False(t, ok, base)
	}
}

func TestThemeGet(t *testing.T) {
	theme := DefaultTheme().Extend(Theme{"colors": {"brand": "#ff0066"}})

	assert.Equal(t, "#7c3aed", theme.Get("colors", "purple", "600"))
	assert.Equal(t, "#ff0066", theme.Get("colors", "brand"))
	assert.Equal(t, "0.25rem", theme.Get("borderRadius"))
	assert.Nil(t, theme.Get("colors", "nope"))
	assert.Nil(t, theme.Get("nope"))
	assert.Nil(t, DefaultTheme().Get("colors", "brand"), "Extend copies")
}

func join(decls []Declaration) string {
	out := ""
	for i, d := range decls {
		if i > 0 {
			out += " "
		}
		out += d.String()
	}
	return out
}
