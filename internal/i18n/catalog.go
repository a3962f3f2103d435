package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Lang is a supported interface language code.
type Lang string

const (
	LangUK Lang = "uk"
	LangEN Lang = "en"

	// DefaultLang is used when no preference is stored or the stored one is unknown.
	DefaultLang = LangUK
)

//go:embed locales/*.yaml
var embedded embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Catalog holds one string tree per language.
type Catalog struct {
	trees map[Lang]map[string]any
	order []Lang
}

// Default returns the catalog built from the embedded locale files. The
// embedded files are validated by tests, so a load failure here panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "locales")
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded locales: %v", err))
		}
		c, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads every <lang>.yaml file at the root of fsys. The default
// language must be present.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	c := &Catalog{trees: make(map[Lang]map[string]any, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		tree := map[string]any{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.trees[Lang(strings.TrimSuffix(path.Base(name), ".yaml"))] = tree
	}
	if _, ok := c.trees[DefaultLang]; !ok {
		return nil, fmt.Errorf("missing locale %q", DefaultLang)
	}

	c.order = append(c.order, DefaultLang)
	var rest []Lang
	for lang := range c.trees {
		if lang != DefaultLang {
			rest = append(rest, lang)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	c.order = append(c.order, rest...)
	return c, nil
}

// Languages returns the available languages, default first.
func (c *Catalog) Languages() []Lang {
	out := make([]Lang, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether lang has a string tree.
func (c *Catalog) Has(lang Lang) bool {
	_, ok := c.trees[lang]
	return ok
}

// Normalize maps an unknown language to the default.
func (c *Catalog) Normalize(lang Lang) Lang {
	if c.Has(lang) {
		return lang
	}
	return DefaultLang
}

// Next returns the language after lang in cycle order.
func (c *Catalog) Next(lang Lang) Lang {
	for i, l := range c.order {
		if l == lang {
			return c.order[(i+1)%len(c.order)]
		}
	}
	return c.order[0]
}

// Resolve walks the dotted key through the language's tree. The key itself is
// returned when a segment is missing or the value found is not a string.
func (c *Catalog) Resolve(lang Lang, key Key) string {
	var node any = c.trees[c.Normalize(lang)]
	for _, part := range strings.Split(string(key), ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return string(key)
		}
		node, ok = m[part]
		if !ok {
			return string(key)
		}
	}
	s, ok := node.(string)
	if !ok {
		return string(key)
	}
	return s
}

// Format resolves a template key and substitutes {n}.
func (c *Catalog) Format(lang Lang, key Key, n int) string {
	tmpl := c.Resolve(lang, key)
	if tmpl == string(key) {
		return tmpl
	}
	return strings.ReplaceAll(tmpl, "{n}", strconv.Itoa(n))
}

// For binds the catalog to one language.
func (c *Catalog) For(lang Lang) Translator {
	return Translator{catalog: c, lang: c.Normalize(lang)}
}

// ParseLang converts a stored preference into a Lang, reporting whether it
// was recognised.
func ParseLang(value string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(value))) {
	case LangUK:
		return LangUK, true
	case LangEN:
		return LangEN, true
	}
	return DefaultLang, false
}

// Translator resolves keys for a fixed language.
type Translator struct {
	catalog *Catalog
	lang    Lang
}

// Lang returns the bound language.
func (t Translator) Lang() Lang { return t.lang }

// T resolves key.
func (t Translator) T(key Key) string { return t.catalog.Resolve(t.lang, key) }

// F resolves a template key with n.
func (t Translator) F(key Key, n int) string { return t.catalog.Format(t.lang, key, n) }

// Ago describes how long ago last was: never, just now, or whole minutes.
func (t Translator) Ago(last, now time.Time) string {
	if last.IsZero() {
		return t.T(KeyTimeNever)
	}
	minutes := int(now.Sub(last) / time.Minute)
	if minutes < 1 {
		return t.T(KeyTimeJustNow)
	}
	return t.F(KeyTimeMinutesAgo, minutes)
}

// GroupName returns the display name of a group. English always uses
// "Group 3.2"; other languages prefer the feed's own name.
func (t Translator) GroupName(code, feedName string) string {
	if t.lang == LangEN {
		return "Group " + ShortGroupName(code)
	}
	if feedName != "" {
		return feedName
	}
	return code
}

// ShortGroupName strips the "GPV" prefix: GPV3.2 becomes 3.2.
func ShortGroupName(code string) string {
	return strings.Replace(code, "GPV", "", 1)
}

// FormatDate renders the dd.mm.yyyy suffix shown on day tabs.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
