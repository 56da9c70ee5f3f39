package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain", input: " text-sm\tfont-bold\n", want: []string{"text-sm", "font-bold"}},
		{name: "empty", input: "   ", want: nil},
		{name: "group", input: "text(purple-600 lg)", want: []string{"text-purple-600", "text-lg"}},
		{name: "variant group", input: "sm:(p-2 m-1)", want: []string{"sm:p-2", "sm:m-1"}},
		{name: "variant inside group", input: "text(hover:red-500)", want: []string{"hover:text-red-500"}},
		{name: "nested groups", input: "md:(text(sm bold) hover:underline)", want: []string{"md:text-sm", "md:text-bold", "md:hover:underline"}},
		{name: "default key", input: "rounded(DEFAULT md)", want: []string{"rounded", "rounded-md"}},
		{name: "arbitrary value with parens", input: "w-[calc(100%_-_1rem)] p-2", want: []string{"w-[calc(100%_-_1rem)]", "p-2"}},
		{name: "unbalanced group stays literal", input: "text(red", want: []string{"text(red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expand(tt.input))
		})
	}
}

func TestSplitVariants(t *testing.T) {
	tests := []struct {
		class    string
		variants []string
		base     string
	}{
		{class: "text-lg", variants: nil, base: "text-lg"},
		{class: "md:text-lg", variants: []string{"md"}, base: "text-lg"},
		{class: "md:hover:text-lg", variants: []string{"md", "hover"}, base: "text-lg"},
		{class: "bg-[url(a:b)]", variants: nil, base: "bg-[url(a:b)]"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			variants, base := splitVariants(tt.class)
			assert.Equal(t, tt.variants, variants)
			assert.Equal(t, tt.base, base)
		})
	}
}
