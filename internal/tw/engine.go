// Package tw is a Tailwind-style styling function for styled definitions. It
// compiles utility classes, grouped classes, variant maps and CSS objects into
// class names and inserts the matching rules into a Sheet.
package tw

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/hash"
	"github.com/yacobolo/styled/internal/logger"
)

// Config configures an Engine. The zero value is usable.
type Config struct {
	// Theme is merged over DefaultTheme.
	Theme Theme
	// Sheet receives generated rules; defaults to a new VirtualSheet.
	Sheet Sheet
	// Hash names CSS objects; defaults to hash.Cyrb32.
	Hash func(string) string
	// HashTags makes the context's tag accessor hash its argument.
	HashTags bool
	Logger   *logger.Logger
}

// Engine compiles tokens into class strings. It is safe for concurrent use.
type Engine struct {
	theme    Theme
	sheet    Sheet
	hash     func(string) string
	hashTags bool
	log      *logger.Logger
	ctx      *styled.Context

	mu       sync.RWMutex
	compiled map[string]bool
}

// New creates an Engine.
func New(cfg Config) *Engine {
	e := &Engine{
		theme:    DefaultTheme().Extend(cfg.Theme),
		sheet:    cfg.Sheet,
		hash:     cfg.Hash,
		hashTags: cfg.HashTags,
		log:      cfg.Logger.With("component", "tw"),
		compiled: make(map[string]bool),
	}
	if e.sheet == nil {
		e.sheet = NewVirtualSheet()
	}
	if e.hash == nil {
		e.hash = hash.Cyrb32
	}
	e.ctx = &styled.Context{
		TW:    e.Style,
		Theme: e.theme.Get,
		Tag:   e.tag,
	}
	return e
}

// Sheet returns the sheet rules are inserted into.
func (e *Engine) Sheet() Sheet { return e.sheet }

// Theme returns the effective theme.
func (e *Engine) Theme() Theme { return e.theme }

// Context implements styled.ContextProvider.
func (e *Engine) Context() *styled.Context { return e.ctx }

func (e *Engine) tag(name string) string {
	if e.hashTags {
		return e.hash(name)
	}
	return name
}

// Style compiles tokens into a space separated class string. Duplicate
// classes are emitted once, at their first position.
func (e *Engine) Style(tokens ...styled.Token) string {
	var classes []string
	for _, token := range tokens {
		classes = e.collect(classes, token, "")
	}
	return strings.Join(dedupe(classes), " ")
}

func (e *Engine) collect(classes []string, token styled.Token, variants string) []string {
	switch t := token.(type) {
	case nil, bool:
		return classes
	case string:
		for _, class := range expand(t) {
			class = variants + class
			e.compileClass(class)
			classes = append(classes, class)
		}
		return classes
	case []styled.Token:
		for _, nested := range t {
			classes = e.collect(classes, nested, variants)
		}
		return classes
	case []string:
		for _, nested := range t {
			classes = e.collect(classes, nested, variants)
		}
		return classes
	case CSS:
		if class := e.compileObject(t, variants); class != "" {
			classes = append(classes, class)
		}
		return classes
	case Declarations:
		obj, err := t.object()
		if err != nil {
			e.log.Error(err, "invalid declarations", "text", string(t))
			return classes
		}
		return e.collect(classes, obj, variants)
	case map[string]styled.Token:
		return e.collectVariantMap(classes, t, variants)
	case styled.Directive:
		return e.collect(classes, t(e.ctx), variants)
	case func(*styled.Context) styled.Token:
		return e.collect(classes, t(e.ctx), variants)
	case styled.PropsFunc:
		return e.collect(classes, t(e.ctx), variants)
	case func(styled.Values) styled.Token:
		return e.collect(classes, t(e.ctx), variants)
	case styled.StyleFactory:
		return e.collect(classes, t(styled.Props{}, e.ctx), variants)
	}

	e.log.Debug("ignoring unsupported token", "type", fmt.Sprintf("%T", token))
	return classes
}

// collectVariantMap applies every key as a variant to its value, e.g.
// {"sm": "text-sm", "md": "text-lg"}. The keys "_" and "initial" add none.
func (e *Engine) collectVariantMap(classes []string, m map[string]styled.Token, variants string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return e.variantOrder(keys[i]) < e.variantOrder(keys[j]) ||
			(e.variantOrder(keys[i]) == e.variantOrder(keys[j]) && keys[i] < keys[j])
	})

	for _, key := range keys {
		prefix := variants
		if key != "_" && key != "initial" {
			prefix += strings.TrimSuffix(key, ":") + ":"
		}
		classes = e.collect(classes, m[key], prefix)
	}
	return classes
}

// variantOrder sorts unprefixed keys first, then screens by width, then
// everything else.
func (e *Engine) variantOrder(key string) int {
	switch key {
	case "_", "initial":
		return 0
	}
	if width, ok := e.theme.lookup("screens", key); ok {
		if px, err := strconv.Atoi(strings.TrimSuffix(width, "px")); err == nil {
			return 1 + px
		}
	}
	return 1 << 30
}

func (e *Engine) compileClass(class string) {
	e.mu.RLock()
	done := e.compiled[class]
	e.mu.RUnlock()
	if done {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.compiled[class] {
		return
	}
	e.compiled[class] = true

	variants, base := splitVariants(class)
	decls, ok := resolve(e.theme, base)
	if !ok {
		e.log.Debug("unknown utility", "class", class)
		return
	}
	pseudo, wrappers, ok := e.applyVariants(variants)
	if !ok {
		e.log.Debug("unknown variant", "class", class)
		return
	}

	selector := "." + escapeClass(class)
	if err := validateSelector(selector); err != nil {
		e.log.Warn("skipping rule", "class", class, "error", err.Error())
		return
	}
	e.sheet.Insert(rule{wrappers: wrappers, selector: selector + pseudo, decls: decls}.String())
}

// compileObject inserts the rules of obj under a class derived from its
// content and the active variants, and returns that class.
func (e *Engine) compileObject(obj CSS, variants string) string {
	raw, err := json.Marshal(obj)
	if err != nil {
		e.log.Error(err, "cannot serialize style object")
		return ""
	}
	class := e.hash(variants + string(raw))

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.compiled[class] {
		return class
	}

	pseudo, wrappers, ok := e.applyVariants(variantList(variants))
	if !ok {
		e.log.Debug("unknown variant in style object", "variants", variants)
		return ""
	}

	selector := "." + escapeClass(class)
	if err := validateSelector(selector); err != nil {
		e.log.Warn("skipping style object", "class", class, "error", err.Error())
		return ""
	}

	rules, err := e.objectRules(selector+pseudo, wrappers, obj)
	if err != nil {
		e.log.Error(err, "invalid style object", "class", class)
		return ""
	}
	for _, r := range rules {
		if err := validateSelector(r.selector); err != nil {
			e.log.Warn("skipping rule", "class", class, "error", err.Error())
			continue
		}
		e.sheet.Insert(r.String())
	}
	e.compiled[class] = true
	return class
}

var pseudoVariants = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"first":         ":first-child",
	"last":          ":last-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
}

// applyVariants turns variants into a pseudo-class suffix and at-rule
// wrappers. It reports false for unknown variants.
func (e *Engine) applyVariants(variants []string) (string, []string, bool) {
	var (
		pseudo   strings.Builder
		wrappers []string
	)
	for _, variant := range variants {
		if p, ok := pseudoVariants[variant]; ok {
			pseudo.WriteString(p)
			continue
		}
		if width, ok := e.theme.lookup("screens", variant); ok {
			wrappers = append(wrappers, "@media (min-width:"+width+")")
			continue
		}
		if variant == "dark" {
			wrappers = append(wrappers, "@media (prefers-color-scheme:dark)")
			continue
		}
		return "", nil, false
	}
	return pseudo.String(), wrappers, true
}

// variantList splits a variant prefix such as "sm:hover:".
func variantList(prefix string) []string {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		return nil
	}
	return strings.Split(prefix, ":")
}

func dedupe(classes []string) []string {
	seen := make(map[string]bool, len(classes))
	out := classes[:0]
	for _, class := range classes {
		if class == "" || seen[class] {
			continue
		}
		seen[class] = true
		out = append(out, class)
	}
	return out
}
