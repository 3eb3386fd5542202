package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// ResponseHeaderKey is the HTMX request header used to detect partial updates.
const ResponseHeaderKey = "HX-Request"

const contentTypeHTML = "text/html; charset=utf-8"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(ResponseHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

func addHTMXTitleIfMissing(responseBody []byte, title string) []byte {
	bodyLower := strings.ToLower(string(responseBody))
	if strings.Contains(bodyLower, "<title") {
		return responseBody
	}
	if strings.TrimSpace(title) == "" {
		return responseBody
	}
	return append([]byte(title), responseBody...)
}

// RenderPage renders page with status. Non-HTMX requests get the whole
// document; HTMX requests get the content of its <main> element, prefixed
// with htmxTitle when the fragment has no title of its own.
func RenderPage(w http.ResponseWriter, r *http.Request, page templ.Component, status int, htmxTitle string) {
	if w == nil || r == nil || page == nil {
		return
	}
	if status == 0 {
		status = http.StatusOK
	}

	var buf bytes.Buffer
	if err := page.Render(r.Context(), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body := buf.Bytes()
	if IsHTMXRequest(r) {
		if mainContent, ok := extractMainContent(body); ok {
			body = mainContent
		}
		body = addHTMXTitleIfMissing(body, htmxTitle)
		w.Header().Add("Vary", ResponseHeaderKey)
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.Index(body[start:], []byte(">"))
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
