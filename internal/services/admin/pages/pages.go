// Package pages defines the admin page units and the route table that
// serves them.
package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/a-h/templ"
	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routes"
)

//go:embed views/*.html
var embeddedViews embed.FS

const viewsDir = "views"

type definition struct {
	name     string
	file     string
	titleKey string
}

var (
	homePage        = definition{name: "home", file: "home.html", titleKey: "home.title"}
	aboutPage       = definition{name: "about", file: "about.html", titleKey: "about.title"}
	adminPage       = definition{name: "admin", file: "admin.html", titleKey: "admin.title"}
	vehiclesPage    = definition{name: "vehicles", file: "vehicles.html", titleKey: "vehicles.title"}
	contractsPage   = definition{name: "contracts", file: "contracts.html", titleKey: "contracts.title"}
	reportsPage     = definition{name: "reports", file: "reports.html", titleKey: "reports.title"}
	notFoundPage    = definition{name: "not_found", file: "not_found.html", titleKey: "errors.not_found.title"}
	unavailablePage = definition{name: "unavailable", file: "unavailable.html", titleKey: "errors.unavailable.title"}
)

// Links exposes route paths to page templates.
type Links struct {
	Home      string
	About     string
	Admin     string
	Vehicles  string
	Contracts string
	Reports   string
}

var adminLinks = Links{
	Home:      routepath.Root,
	About:     routepath.About,
	Admin:     routepath.Admin,
	Vehicles:  routepath.AdminVehicles,
	Contracts: routepath.AdminContracts,
	Reports:   routepath.AdminReports,
}

type viewData struct {
	Locale i18n.Locale
	Links  Links
}

// NewRouter builds the admin route table. Views are read from viewsFS, or
// from the embedded views when nil. The home, not-found and unavailable
// units are parsed immediately; the rest are parsed on first visit.
func NewRouter(viewsFS fs.FS) (*routes.Router, error) {
	if viewsFS == nil {
		viewsFS = embeddedViews
	}

	home, err := parseUnit(viewsFS, homePage)
	if err != nil {
		return nil, err
	}
	notFound, err := parseUnit(viewsFS, notFoundPage)
	if err != nil {
		return nil, err
	}
	unavailable, err := parseUnit(viewsFS, unavailablePage)
	if err != nil {
		return nil, err
	}

	table, err := routes.NewTable([]routes.Entry{
		{Path: routepath.Root, Name: routepath.HomeName, Page: routes.Eager(home)},
		{Path: routepath.About, Name: routepath.AboutName, Page: deferred(viewsFS, aboutPage)},
		{Path: routepath.Admin, Name: routepath.AdminName, Page: deferred(viewsFS, adminPage)},
		{Path: routepath.AdminVehicles, Name: routepath.AdminVehiclesName, Page: deferred(viewsFS, vehiclesPage)},
		{Path: routepath.AdminContracts, Name: routepath.AdminContractsName, Page: deferred(viewsFS, contractsPage)},
		{Path: routepath.AdminReports, Name: routepath.AdminReportsName, Page: deferred(viewsFS, reportsPage)},
	}, routes.Eager(notFound))
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	return routes.NewRouter(table, unavailable)
}

func deferred(viewsFS fs.FS, def definition) *routes.PageRef {
	return routes.Deferred(def.name, func(ctx context.Context) (routes.Unit, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := parseUnit(viewsFS, def)
		if err != nil {
			return nil, err
		}
		return page, nil
	})
}

// unit is a parsed view. The template is never executed directly, only
// clones bound to a translator.
type unit struct {
	def  definition
	tmpl *template.Template
}

func parseUnit(viewsFS fs.FS, def definition) (*unit, error) {
	tmpl, err := template.New(def.file).
		Funcs(template.FuncMap{"t": func(key string) string { return key }}).
		ParseFS(viewsFS, path.Join(viewsDir, def.file))
	if err != nil {
		return nil, fmt.Errorf("parse view %s: %w", def.file, err)
	}
	return &unit{def: def, tmpl: tmpl}, nil
}

func (u *unit) Name() string {
	return u.def.name
}

func (u *unit) TitleKey() string {
	return u.def.titleKey
}

func (u *unit) Component(tr i18n.Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		view, err := u.tmpl.Clone()
		if err != nil {
			return fmt.Errorf("clone view %s: %w", u.def.file, err)
		}
		data := viewData{Links: adminLinks}
		resolve := func(key string) string { return key }
		if tr != nil {
			resolve = tr.Resolve
			data.Locale = tr.Locale()
		}
		view.Funcs(template.FuncMap{"t": resolve})
		return templ.FromGoHTML(view, data).Render(ctx, w)
	})
}
