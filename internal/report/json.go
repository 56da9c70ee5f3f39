package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how the render command prints its result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a --format value. An empty value means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// JSONOutput is the structured export of a render.
type JSONOutput struct {
	Version    string          `json:"version"`
	Summary    JSONSummary     `json:"summary"`
	Components []JSONComponent `json:"components"`
	Rules      []string        `json:"rules,omitempty"`
	Stats      *JSONStats      `json:"stats,omitempty"`
}

// JSONSummary holds the counts printed by PrintSummary.
type JSONSummary struct {
	Components int `json:"components"`
	Rules      int `json:"rules"`
}

// JSONComponent is one rendered component.
type JSONComponent struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ID          string `json:"id"`
	Selector    string `json:"selector"`
	Markup      string `json:"markup"`
}

// JSONStats mirrors Stats.
type JSONStats struct {
	Rules        int            `json:"rules"`
	AtRules      int            `json:"at_rules"`
	Selectors    int            `json:"selectors"`
	Declarations int            `json:"declarations"`
	Properties   map[string]int `json:"properties"`
	Categories   map[string]int `json:"categories"`
}

// WriteJSON writes items, rules and optional stats as indented JSON.
// rules is omitted when nil; ruleCount is reported either way.
func WriteJSON(w io.Writer, items []Rendered, rules []string, ruleCount int, stats *Stats) error {
	output := JSONOutput{
		Version:    "1.0",
		Summary:    JSONSummary{Components: len(items), Rules: ruleCount},
		Components: make([]JSONComponent, len(items)),
		Rules:      rules,
	}
	for i, item := range items {
		output.Components[i] = JSONComponent{
			Name:        item.Name,
			DisplayName: item.DisplayName,
			ID:          item.ID,
			Selector:    "." + item.ID,
			Markup:      item.Markup,
		}
	}
	if stats != nil {
		output.Stats = buildJSONStats(*stats)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

func buildJSONStats(stats Stats) *JSONStats {
	out := &JSONStats{
		Rules:        stats.Rules,
		AtRules:      stats.AtRules,
		Selectors:    stats.Selectors,
		Declarations: stats.Declarations,
		Properties:   make(map[string]int, len(stats.Properties)),
		Categories:   make(map[string]int, len(stats.Categories)),
	}
	for _, p := range stats.Properties {
		out.Properties[p.Property] = p.Count
	}
	for _, c := range stats.Categories {
		out.Categories[string(c.Category)] = c.Count
	}
	return out
}
