package tw

import "strings"

// Theme maps sections ("colors", "spacing", ...) to keyed values. Nested keys
// are flattened with "-": the colour purple 600 is colors["purple-600"].
type Theme map[string]map[string]string

// Get returns the value of key in section, or nil. Multiple key parts are
// joined with "-", so Get("colors", "purple", "600") reads "purple-600".
func (t Theme) Get(section string, key ...string) any {
	value, ok := t.lookup(section, strings.Join(key, "-"))
	if !ok {
		return nil
	}
	return value
}

func (t Theme) lookup(section, key string) (string, bool) {
	values, ok := t[section]
	if !ok {
		return "", false
	}
	if key == "" {
		key = "DEFAULT"
	}
	value, ok := values[key]
	return value, ok
}

// Extend returns a copy of t with the sections of other merged over it.
func (t Theme) Extend(other Theme) Theme {
	out := make(Theme, len(t)+len(other))
	for section, values := range t {
		out[section] = copyValues(values, len(values))
	}
	for section, values := range other {
		merged := copyValues(out[section], len(values))
		for k, v := range values {
			merged[k] = v
		}
		out[section] = merged
	}
	return out
}

func copyValues(values map[string]string, extra int) map[string]string {
	out := make(map[string]string, len(values)+extra)
	for k, v := range values {
		out[k] = v
	}
	return out
}

var palette = map[string][]string{
	"gray":   {"#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":    {"#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"green":  {"#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b"},
	"blue":   {"#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"indigo": {"#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81"},
	"purple": {"#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95"},
}

func colors() map[string]string {
	out := map[string]string{
		"transparent": "transparent",
		"current":     "currentColor",
		"black":       "#000",
		"white":       "#fff",
	}
	for name, shades := range palette {
		for i, value := range shades {
			out[name+"-"+shadeNames[i]] = value
		}
	}
	return out
}

var shadeNames = [...]string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}

// DefaultTheme returns a fresh copy of the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		"screens": {
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
		"colors": colors(),
		"spacing": {
			"px": "1px", "0": "0px", "0.5": "0.125rem", "1": "0.25rem", "2": "0.5rem",
			"3": "0.75rem", "4": "1rem", "5": "1.25rem", "6": "1.5rem", "8": "2rem",
			"10": "2.5rem", "12": "3rem", "16": "4rem", "20": "5rem", "24": "6rem",
		},
		"fontSize": {
			"xs": "0.75rem/1rem", "sm": "0.875rem/1.25rem", "base": "1rem/1.5rem",
			"lg": "1.125rem/1.75rem", "xl": "1.25rem/1.75rem", "2xl": "1.5rem/2rem",
			"3xl": "1.875rem/2.25rem", "4xl": "2.25rem/2.5rem", "5xl": "3rem/1",
		},
		"fontWeight": {
			"light": "300", "normal": "400", "medium": "500", "semibold": "600", "bold": "700",
		},
		"fontFamily": {
			"sans": "ui-sans-serif,system-ui,sans-serif",
			"mono": "ui-monospace,monospace",
		},
		"borderRadius": {
			"none": "0px", "sm": "0.125rem", "DEFAULT": "0.25rem", "md": "0.375rem",
			"lg": "0.5rem", "xl": "0.75rem", "full": "9999px",
		},
		"borderWidth": {
			"DEFAULT": "1px", "0": "0px", "2": "2px", "4": "4px",
		},
	}
}
