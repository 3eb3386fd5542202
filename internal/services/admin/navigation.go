package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/fleetdesk/internal/services/admin/routes"
)

// Navigation request headers sent by the client router.
const (
	HeaderNavType       = "X-Nav-Type"
	HeaderNavScrollLeft = "X-Nav-Scroll-Left"
	HeaderNavScrollTop  = "X-Nav-Scroll-Top"
	HeaderNavFragment   = "X-Nav-Fragment"
	// HeaderScrollTarget echoes the computed scroll target as JSON.
	HeaderScrollTarget = "X-Scroll-Target"
)

// navigationFromRequest reads the navigation headers. A saved position is
// only taken from history traversals that carry a valid top offset.
func navigationFromRequest(r *http.Request) routes.Navigation {
	nav := routes.Navigation{
		Path:     r.URL.Path,
		Type:     routes.NavigationPush,
		Fragment: strings.TrimSpace(r.Header.Get(HeaderNavFragment)),
	}
	if strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderNavType)), string(routes.NavigationTraverse)) {
		nav.Type = routes.NavigationTraverse
		if top, err := strconv.Atoi(strings.TrimSpace(r.Header.Get(HeaderNavScrollTop))); err == nil && top >= 0 {
			left, err := strconv.Atoi(strings.TrimSpace(r.Header.Get(HeaderNavScrollLeft)))
			if err != nil || left < 0 {
				left = 0
			}
			nav.Saved = &routes.Position{Left: left, Top: top}
		}
	}
	return nav
}
