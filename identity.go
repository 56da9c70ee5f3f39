package styled

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// descriptor is the serialized form of values that have no textual content of
// their own: functions and nested definitions.
type descriptor struct {
	T string `json:"t"`
	K string `json:"k,omitempty"`
	N string `json:"n,omitempty"`
	D string `json:"d,omitempty"`
	S string `json:"s,omitempty"`
}

// canonical serializes the pair (host, tokens) to the text the identifier
// is derived from. Plain values keep their JSON form, so static definitions
// hash to the same identifiers twind produces.
func canonical(host any, tokens []Token) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Both halves are normalized, so encoding cannot fail.
	_ = enc.Encode([]any{normalize(host), normalize(tokens)})

	return strings.TrimSuffix(buf.String(), "\n")
}

func normalize(value any) any {
	switch v := value.(type) {
	case nil, string, bool, json.Number:
		return v
	case *Definition:
		return descriptor{T: "component", D: v.DisplayName(), S: v.String()}
	case named:
		return descriptor{T: "function", K: kindOf(v.fn).String(), D: v.name, S: v.name}
	case json.Marshaler:
		return marshalOrDescribe(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func:
		return funcDescriptor(value)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return marshalOrDescribe(value)
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return marshalOrDescribe(value)
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	}

	return marshalOrDescribe(value)
}

// marshalOrDescribe keeps values that encode cleanly and replaces the rest
// (channels, cycles, unsupported numbers) by their type.
func marshalOrDescribe(value any) any {
	raw, err := json.Marshal(value)
	if err != nil {
		return descriptor{T: fmt.Sprintf("%T", value)}
	}
	return json.RawMessage(raw)
}

func funcDescriptor(fn any) descriptor {
	return descriptor{
		T: "function",
		K: kindOf(fn).String(),
		N: funcSource(fn),
	}
}

// funcSource returns where the literal of fn is declared, e.g.
// "button.go:12". Every closure created from the same literal shares it,
// including copies the compiler inlines into different callers under other
// symbol names. Only the file name is kept so the result does not depend on
// the checkout location or -trimpath.
func funcSource(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	file, line := f.FileLine(f.Entry())
	if file == "" {
		return f.Name()
	}
	return path.Base(filepath.ToSlash(file)) + ":" + strconv.Itoa(line)
}

// funcName returns the symbol name of fn, e.g. "example.com/ui.Card".
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}

func isFunc(value any) bool {
	return value != nil && reflect.ValueOf(value).Kind() == reflect.Func
}
