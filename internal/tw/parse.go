package tw

import "strings"

// expand splits a class string into single classes and resolves groups:
//
//	"text(purple-600 lg)"  -> "text-purple-600", "text-lg"
//	"sm:(p-2 m-1)"         -> "sm:p-2", "sm:m-1"
//	"text(hover:red-500)"  -> "hover:text-red-500"
func expand(input string) []string {
	var out []string
	expandInto(&out, input, "", "")
	return out
}

func expandInto(out *[]string, input, variants, base string) {
	for _, item := range splitTopLevel(input) {
		open := indexOutsideBrackets(item, '(')
		if open < 0 || !strings.HasSuffix(item, ")") {
			itemVariants, itemBase := splitLastVariant(item)
			*out = append(*out, variants+itemVariants+joinBase(base, itemBase))
			continue
		}

		headVariants, head := splitLastVariant(item[:open])
		expandInto(out, item[open+1:len(item)-1], variants+headVariants, joinBase(base, head))
	}
}

// splitTopLevel splits on whitespace outside parentheses and brackets.
func splitTopLevel(input string) []string {
	var (
		items []string
		depth int
		start = -1
	)
	for i, r := range input {
		switch {
		case r == '(' || r == '[':
			depth++
		case (r == ')' || r == ']') && depth > 0:
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if start >= 0 {
				items = append(items, input[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		items = append(items, input[start:])
	}
	return items
}

func indexOutsideBrackets(s string, target byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case c == target && depth == 0:
			return i
		}
	}
	return -1
}

// splitLastVariant splits "md:hover:text-lg" into "md:hover:" and "text-lg".
func splitLastVariant(class string) (string, string) {
	depth := 0
	last := -1
	for i := 0; i < len(class); i++ {
		switch c := class[i]; {
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case c == ':' && depth == 0:
			last = i
		}
	}
	return class[:last+1], class[last+1:]
}

// splitVariants splits a class into its variants and its base utility.
func splitVariants(class string) ([]string, string) {
	prefix, base := splitLastVariant(class)
	if prefix == "" {
		return nil, base
	}
	return strings.Split(strings.TrimSuffix(prefix, ":"), ":"), base
}

func joinBase(base, name string) string {
	switch {
	case base == "":
		return name
	case name == "" || name == "DEFAULT":
		return base
	default:
		return base + "-" + name
	}
}
