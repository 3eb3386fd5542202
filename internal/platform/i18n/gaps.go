package i18n

import (
	"slices"

	"github.com/louisbranch/fleetdesk/internal/platform/i18n/catalog"
)

// CatalogGaps lists, per locale, the keys other locales define but it does
// not. Lookups of those keys echo the key in that locale only.
func CatalogGaps(bundle *catalog.Bundle) map[Locale][]string {
	locales := bundle.Locales()
	present := make(map[string]map[string]struct{}, len(locales))
	union := map[string]struct{}{}
	for _, code := range locales {
		root, _ := bundle.Dictionary(code)
		keys := map[string]struct{}{}
		for _, path := range root.Paths() {
			keys[path] = struct{}{}
			union[path] = struct{}{}
		}
		present[code] = keys
	}

	gaps := map[Locale][]string{}
	for _, code := range locales {
		var missing []string
		for path := range union {
			if _, ok := present[code][path]; !ok {
				missing = append(missing, path)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			gaps[Locale(code)] = missing
		}
	}
	return gaps
}
