package report

import (
	"fmt"
	"sort"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stats describes a generated stylesheet.
type Stats struct {
	Rules        int
	AtRules      int
	Selectors    int
	Declarations int
	// Properties counts declarations per property, most used first.
	Properties []PropertyCount
	// Categories counts declarations per property category.
	Categories []CategoryCount
}

// PropertyCount is the number of declarations of one property.
type PropertyCount struct {
	Property string
	Count    int
}

// Analyze parses a stylesheet and counts its contents.
func Analyze(stylesheet string) (Stats, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return Stats{}, fmt.Errorf("parse stylesheet: %w", err)
	}

	var stats Stats
	counts := make(map[string]int)
	countRules(sheet.Rules, &stats, counts)

	for property, count := range counts {
		stats.Properties = append(stats.Properties, PropertyCount{Property: property, Count: count})
	}
	sort.Slice(stats.Properties, func(i, j int) bool {
		a, b := stats.Properties[i], stats.Properties[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Property < b.Property
	})
	stats.Categories = countCategories(stats.Properties)
	return stats, nil
}

func countRules(rules []*css.Rule, stats *Stats, counts map[string]int) {
	for _, rule := range rules {
		switch rule.Kind {
		case css.AtRule:
			stats.AtRules++
		case css.QualifiedRule:
			stats.Rules++
			stats.Selectors += len(rule.Selectors)
		}
		for _, decl := range rule.Declarations {
			stats.Declarations++
			counts[decl.Property]++
		}
		countRules(rule.Rules, stats, counts)
	}
}
