package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routes"
)

//go:embed layout.html
var layoutFS embed.FS

var layoutTemplate = template.Must(template.New("layout.html").ParseFS(layoutFS, "layout.html"))

type layoutData struct {
	LangTag       string
	Lang          i18n.Locale
	Active        i18n.Locale
	Title         string
	AppTitle      string
	Tagline       string
	Nav           []NavItem
	Languages     []LanguageOption
	LanguageLabel string
	SwitchLabel   string
	RouteName     string
	Scroll        routes.ScrollTarget
	Body          template.HTML
}

// PageTitle returns the localized page title.
func PageTitle(page PageContext) string {
	return T(page.Loc, page.TitleKey)
}

// Layout wraps body in the admin document shell.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content, err := templ.ToGoHTML(ctx, body)
		if err != nil {
			return fmt.Errorf("render page body: %w", err)
		}
		return layoutTemplate.Execute(w, layoutData{
			LangTag:       page.Lang.Tag().String(),
			Lang:          page.Lang,
			Active:        page.Active,
			Title:         PageTitle(page),
			AppTitle:      T(page.Loc, "app.title"),
			Tagline:       T(page.Loc, "app.tagline"),
			Nav:           NavItems(page),
			Languages:     LanguageOptions(page),
			LanguageLabel: T(page.Loc, "language.label"),
			SwitchLabel:   T(page.Loc, "language.switch"),
			RouteName:     page.RouteName,
			Scroll:        page.Scroll,
			Body:          content,
		})
	})
}
