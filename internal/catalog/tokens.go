package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/tw"
)

// convertToken turns a decoded YAML value into a token:
//
//	"p-4"                                -> string
//	[a, b]                               -> []styled.Token
//	{css: {color: red}}                  -> tw.CSS
//	{declarations: "color: red"}         -> tw.Declarations
//	{when: primary, then: x, else: y}    -> PropsFunc choosing on a boolean prop
//	{prop: size, prefix: text-, default: base}
//	                                     -> PropsFunc reading a prop
//	{sm: text-sm, md: text-lg}           -> variant map
func convertToken(raw any) (styled.Token, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string, bool:
		return v, nil
	case []any:
		out := make([]styled.Token, len(v))
		for i, item := range v {
			token, err := convertToken(item)
			if err != nil {
				return nil, err
			}
			out[i] = token
		}
		return out, nil
	case map[string]any:
		return convertMap(v)
	}
	return nil, fmt.Errorf("unsupported token of type %T", raw)
}

func convertMap(m map[string]any) (styled.Token, error) {
	switch {
	case has(m, "css"):
		if err := onlyKeys(m, "css"); err != nil {
			return nil, err
		}
		obj, ok := m["css"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("css must be a mapping, got %T", m["css"])
		}
		return tw.CSS(obj), nil

	case has(m, "declarations"):
		if err := onlyKeys(m, "declarations"); err != nil {
			return nil, err
		}
		text, ok := m["declarations"].(string)
		if !ok {
			return nil, fmt.Errorf("declarations must be a string, got %T", m["declarations"])
		}
		if _, err := tw.ParseDeclarations(text); err != nil {
			return nil, err
		}
		return tw.Declarations(text), nil

	case has(m, "when"):
		return conditional(m)

	case has(m, "prop"):
		return propValue(m)
	}

	out := make(map[string]styled.Token, len(m))
	for key, value := range m {
		token, err := convertToken(value)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", key, err)
		}
		out[key] = token
	}
	return out, nil
}

func conditional(m map[string]any) (styled.Token, error) {
	if err := onlyKeys(m, "when", "then", "else"); err != nil {
		return nil, err
	}
	prop, ok := m["when"].(string)
	if !ok || strings.TrimPrefix(prop, "!") == "" {
		return nil, fmt.Errorf("when must name a property")
	}
	then, err := convertToken(m["then"])
	if err != nil {
		return nil, fmt.Errorf("then: %w", err)
	}
	otherwise, err := convertToken(m["else"])
	if err != nil {
		return nil, fmt.Errorf("else: %w", err)
	}

	name, negated := strings.CutPrefix(prop, "!")
	fn := styled.PropsFunc(func(p styled.Values) styled.Token {
		if styled.Bool(p, name) != negated {
			return then
		}
		return otherwise
	})
	return styled.Named("when:"+describe(m), fn), nil
}

func propValue(m map[string]any) (styled.Token, error) {
	if err := onlyKeys(m, "prop", "prefix", "default"); err != nil {
		return nil, err
	}
	prop, ok := m["prop"].(string)
	if !ok || prop == "" {
		return nil, fmt.Errorf("prop must name a property")
	}
	prefix, _ := m["prefix"].(string)
	fallback, _ := m["default"].(string)

	fn := styled.PropsFunc(func(p styled.Values) styled.Token {
		value := styled.String(p, prop)
		if value == "" {
			value = fallback
		}
		if value == "" {
			return nil
		}
		return prefix + value
	})
	return styled.Named("prop:"+describe(m), fn), nil
}

func has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func onlyKeys(m map[string]any, allowed ...string) error {
	var extra []string
	for key := range m {
		if !contains(allowed, key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return fmt.Errorf("unexpected keys %s next to %q", strings.Join(extra, ", "), allowed[0])
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// describe is the stable text a function token is named by.
func describe(m map[string]any) string {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprint(m)
	}
	return string(raw)
}
