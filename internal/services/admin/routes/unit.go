package routes

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
)

// Unit is a renderable page.
type Unit interface {
	// Name identifies the unit in logs and traces.
	Name() string
	// TitleKey is the translation key of the page title.
	TitleKey() string
	// Component renders the unit body with tr.
	Component(tr i18n.Translator) templ.Component
}
