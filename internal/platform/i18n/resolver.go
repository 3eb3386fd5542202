package i18n

import (
	"strings"

	"github.com/louisbranch/fleetdesk/internal/platform/i18n/catalog"
)

// Translator resolves dotted keys for one locale.
type Translator interface {
	Resolve(key string) string
	Locale() Locale
}

// Resolver translates keys against the active locale.
type Resolver struct {
	bundle *catalog.Bundle
	active *ActiveLocale
}

// NewResolver binds a dictionary bundle to an active locale cell. A nil
// cell starts a fresh one at Default().
func NewResolver(bundle *catalog.Bundle, active *ActiveLocale) *Resolver {
	if active == nil {
		active = NewActiveLocale(Default())
	}
	return &Resolver{bundle: bundle, active: active}
}

// LoadBundle loads the supported dictionaries, from dir when set and
// from the embedded catalogs otherwise.
func LoadBundle(dir string) (*catalog.Bundle, error) {
	if strings.TrimSpace(dir) != "" {
		return catalog.LoadDir(dir, SupportedCodes())
	}
	return catalog.LoadEmbedded(SupportedCodes())
}

// Resolve returns the translation for key in the active locale, or key
// itself when the path is missing or ends on a branch.
func (r *Resolver) Resolve(key string) string {
	return r.Lookup(r.Locale()).Resolve(key)
}

// SetLocale replaces the active locale.
func (r *Resolver) SetLocale(locale Locale) {
	r.active.Set(locale)
}

// Locale returns the active locale.
func (r *Resolver) Locale() Locale {
	return r.active.Get()
}

// Subscribe observes active locale changes.
func (r *Resolver) Subscribe() (<-chan Locale, func()) {
	return r.active.Subscribe()
}

// Lookup returns a translator fixed to locale. It never touches the
// active locale.
func (r *Resolver) Lookup(locale Locale) Lookup {
	var root *catalog.Node
	if r != nil {
		root, _ = r.bundle.Dictionary(string(locale))
	}
	return Lookup{locale: locale, root: root}
}

// Lookup is a read-only translator bound to one locale.
type Lookup struct {
	locale Locale
	root   *catalog.Node
}

// Locale returns the bound locale.
func (l Lookup) Locale() Locale {
	return l.locale
}

// Resolve returns the translation for key, or key when absent.
func (l Lookup) Resolve(key string) string {
	node := l.root
	for _, segment := range strings.Split(key, ".") {
		child, ok := node.Child(segment)
		if !ok {
			return key
		}
		node = child
	}
	if text, ok := node.Text(); ok {
		return text
	}
	return key
}
