package route

import (
	"net/http"
	"strings"
)

// CanonicalPath strips trailing "/" characters, keeping the root path.
func CanonicalPath(path string) string {
	canonical := strings.TrimRight(path, "/")
	if canonical == "" {
		return "/"
	}
	return canonical
}

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/" characters.
//
// It returns true when a redirect was written. Route handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	originalPath := r.URL.Path
	canonical := CanonicalPath(originalPath)
	if canonical == originalPath {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}
