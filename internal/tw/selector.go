package tw

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
)

// escapeClass escapes a class name for use in a selector.
func escapeClass(class string) string {
	var b strings.Builder
	for i, r := range class {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-', r >= 0x80:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, "\\3%c ", r)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// userActionPseudos are matched against live documents only, so they are
// removed before a selector is compiled against a static tree. Longer names
// come first.
var userActionPseudos = []string{
	"::placeholder",
	"::before",
	"::after",
	":focus-visible",
	":focus-within",
	":focus",
	":hover",
	":active",
	":visited",
}

// stripUserActions removes user-action pseudos from sel. Escaped colons, as
// in `.sm\:hover\:underline`, belong to a class name and are kept.
func stripUserActions(sel string) string {
	var b strings.Builder
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		if c == '\\' && i+1 < len(sel) {
			b.WriteByte(c)
			b.WriteByte(sel[i+1])
			i++
			continue
		}
		if c == ':' {
			if p := userActionAt(sel[i:]); p != "" {
				i += len(p) - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// userActionAt returns the user-action pseudo rest starts with, if any.
func userActionAt(rest string) string {
	for _, p := range userActionPseudos {
		if strings.HasPrefix(rest, p) && !isNameByte(rest, len(p)) {
			return p
		}
	}
	return ""
}

func isNameByte(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	return c == '-' || c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// validateSelector reports whether sel can be matched against markup.
func validateSelector(sel string) error {
	structural := stripUserActions(sel)
	if strings.TrimSpace(structural) == "" {
		return fmt.Errorf("empty selector %q", sel)
	}
	if _, err := cascadia.Compile(structural); err != nil {
		return fmt.Errorf("invalid selector %q: %w", sel, err)
	}
	return nil
}
