package report

import (
	"fmt"
	"io"
	"strings"
)

// Rendered is one rendered component.
type Rendered struct {
	Name        string
	DisplayName string
	ID          string
	Markup      string
}

// Reporter writes command output.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// New creates a Reporter writing to w.
func New(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool { return r.useColors }

// PrintRendered prints every component with its identifier and markup.
func (r *Reporter) PrintRendered(items []Rendered) {
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s %s %s\n",
			RenderStyle(StyleHeader, item.Name, r.useColors),
			RenderStyle(StyleMuted, item.DisplayName, r.useColors),
			RenderStyle(StyleClass, "."+item.ID, r.useColors))
		fmt.Fprintln(r.w, item.Markup)
	}
}

// PrintCSS prints the generated rules under a header.
func (r *Reporter) PrintCSS(rules []string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Generated CSS", r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len("Generated CSS")))
	for _, rule := range rules {
		fmt.Fprintln(r.w, rule)
	}
}

// PrintStatistics prints stylesheet statistics. At most top properties are
// listed.
func (r *Reporter) PrintStatistics(stats Stats, top int) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleHeader, "Stylesheet Statistics", r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len("Stylesheet Statistics")))
	fmt.Fprintf(r.w, "Style Rules:   %d\n", stats.Rules)
	fmt.Fprintf(r.w, "At-Rules:      %d\n", stats.AtRules)
	fmt.Fprintf(r.w, "Selectors:     %d\n", stats.Selectors)
	fmt.Fprintf(r.w, "Declarations:  %d\n", stats.Declarations)

	if len(stats.Categories) > 0 {
		parts := make([]string, len(stats.Categories))
		for i, c := range stats.Categories {
			parts[i] = fmt.Sprintf("%s %d", c.Category, c.Count)
		}
		fmt.Fprintf(r.w, "Categories:    %s\n", strings.Join(parts, ", "))
	}

	for i, p := range stats.Properties {
		if i >= top {
			break
		}
		fmt.Fprintf(r.w, "  %-20s %d\n", p.Property, p.Count)
	}
}

// PrintSummary prints a one line summary.
func (r *Reporter) PrintSummary(components, rules int) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleSuccess, fmt.Sprintf("%s, %s",
		pluralizeCount(components, "component", "components"),
		pluralizeCount(rules, "rule", "rules")), r.useColors))
}

// PrintError prints err as a failure.
func (r *Reporter) PrintError(err error) {
	fmt.Fprintln(r.w, RenderStyle(StyleError, "error: ", r.useColors)+err.Error())
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
