package report

import "strings"

// Category groups CSS properties by what they affect.
type Category string

const (
	CategoryLayout     Category = "layout"
	CategoryTypography Category = "typography"
	CategoryVisual     Category = "visual"
	CategoryEffects    Category = "effects"
	CategoryVendor     Category = "vendor"
	CategoryCustom     Category = "custom"
)

// categoryOrder is the order categories are reported in.
var categoryOrder = []Category{
	CategoryLayout, CategoryTypography, CategoryVisual, CategoryEffects, CategoryVendor, CategoryCustom,
}

// exactCategories lists properties that no prefix below classifies correctly.
var exactCategories = map[string]Category{
	"color":          CategoryVisual,
	"opacity":        CategoryVisual,
	"fill":           CategoryVisual,
	"stroke":         CategoryVisual,
	"box-shadow":     CategoryVisual,
	"line-height":    CategoryTypography,
	"letter-spacing": CategoryTypography,
	"white-space":    CategoryTypography,
	"word-break":     CategoryTypography,
	"hyphens":        CategoryTypography,
	"filter":         CategoryEffects,
	"mix-blend-mode": CategoryEffects,
	"clip-path":      CategoryEffects,
	"mask":           CategoryEffects,
}

var prefixCategories = []struct {
	prefix   string
	category Category
}{
	{"font", CategoryTypography},
	{"text-", CategoryTypography},
	{"background", CategoryVisual},
	{"border", CategoryVisual},
	{"outline", CategoryVisual},
	{"transition", CategoryEffects},
	{"transform", CategoryEffects},
	{"animation", CategoryEffects},
	{"backdrop-", CategoryEffects},
}

// Categorize returns the category of a CSS property. Properties not listed
// elsewhere, such as sizing, spacing and positioning, are layout.
func Categorize(property string) Category {
	property = strings.ToLower(property)
	if strings.HasPrefix(property, "--") {
		return CategoryCustom
	}
	if strings.HasPrefix(property, "-") {
		return CategoryVendor
	}
	if c, ok := exactCategories[property]; ok {
		return c
	}
	for _, p := range prefixCategories {
		if strings.HasPrefix(property, p.prefix) {
			return p.category
		}
	}
	return CategoryLayout
}

// CategoryCount is the number of declarations in one category.
type CategoryCount struct {
	Category Category
	Count    int
}

func countCategories(properties []PropertyCount) []CategoryCount {
	counts := make(map[Category]int)
	for _, p := range properties {
		counts[Categorize(p.Property)] += p.Count
	}

	var out []CategoryCount
	for _, c := range categoryOrder {
		if counts[c] > 0 {
			out = append(out, CategoryCount{Category: c, Count: counts[c]})
		}
	}
	return out
}
