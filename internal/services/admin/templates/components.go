package templates

import (
	"net/url"
	"strings"

	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
)

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	URL    string
	Active bool
}

var navLinks = []struct {
	key  string
	path string
}{
	{key: "menu.home", path: routepath.Root},
	{key: "menu.about", path: routepath.About},
	{key: "menu.admin", path: routepath.Admin},
	{key: "menu.vehicles", path: routepath.AdminVehicles},
	{key: "menu.contracts", path: routepath.AdminContracts},
	{key: "menu.reports", path: routepath.AdminReports},
}

// NavItems returns the localized navigation. Links keep the lang query
// parameter while previewing another locale.
func NavItems(page PageContext) []NavItem {
	items := make([]NavItem, 0, len(navLinks))
	for _, link := range navLinks {
		target := link.path
		if page.Preview {
			target = AppendQueryParam(target, "lang", string(page.Lang))
		}
		items = append(items, NavItem{
			Label:  T(page.Loc, link.key),
			URL:    target,
			Active: page.CurrentPath == link.path,
		})
	}
	return items
}

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with the rendering
// locale selected.
func LanguageOptions(page PageContext) []LanguageOption {
	supported := i18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, locale := range supported {
		options = append(options, LanguageOption{
			Code:   string(locale),
			Label:  T(page.Loc, "language."+string(locale)),
			Active: locale == page.Lang,
		})
	}
	return options
}

// LanguageURL returns the current URL with the lang param set to code.
func LanguageURL(page PageContext, code string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set("lang", code)
	path := page.CurrentPath
	if strings.TrimSpace(path) == "" {
		path = routepath.Root
	}
	return path + "?" + values.Encode()
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}
