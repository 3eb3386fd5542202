package templates

import (
	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routes"
)

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	// Lang is the locale the page renders in.
	Lang i18n.Locale
	// Active is the process-wide active locale.
	Active i18n.Locale
	// Preview is true when Lang came from the lang query parameter.
	Preview      bool
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	RouteName    string
	TitleKey     string
	Scroll       routes.ScrollTarget
	RequestID    string
}
