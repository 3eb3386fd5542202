package templates

import "github.com/louisbranch/fleetdesk/internal/platform/i18n"

// Localizer provides translated strings for layout components.
type Localizer = i18n.Translator

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Resolve(key)
}
