package admin

import (
	"net/http"
	"net/url"
	"strings"
)

// CrossOriginKey localizes rejected cross-site writes.
const CrossOriginKey = "errors.cross_origin"

// isSameOrigin reports whether a state-changing request was sent by this
// site. The Origin header wins; the Referer is the fallback. Requests with
// neither are rejected.
func isSameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return sameOrigin(origin, r)
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		return sameOrigin(referer, r)
	}
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
