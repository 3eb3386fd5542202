package i18n

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/fleetdesk/internal/platform/errors"
	platformi18n "github.com/louisbranch/fleetdesk/internal/platform/i18n"
)

const (
	// LangParam is the query and form parameter used to select a language.
	LangParam = "lang"
	// UnsupportedLocaleKey localizes rejected language switches.
	UnsupportedLocaleKey = "errors.unsupported_locale"
)

// PreviewLocale returns the supported locale named by the lang query
// parameter.
func PreviewLocale(r *http.Request) (platformi18n.Locale, bool) {
	if r == nil || r.URL == nil {
		return "", false
	}
	value := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if value == "" {
		return "", false
	}
	return platformi18n.ParseLocale(value)
}

// RequestTranslator returns the translator for r and whether it comes from
// a preview. Without a preview it binds the active locale as of this call.
func RequestTranslator(r *http.Request, resolver *platformi18n.Resolver) (platformi18n.Lookup, bool) {
	if locale, ok := PreviewLocale(r); ok {
		return resolver.Lookup(locale), true
	}
	return resolver.Lookup(resolver.Locale()), false
}

// FormLocale parses the lang form value of a language switch.
func FormLocale(r *http.Request) (platformi18n.Locale, error) {
	if r == nil {
		return "", apperrors.EK(apperrors.KindInvalidInput, UnsupportedLocaleKey, "request is required")
	}
	if err := r.ParseForm(); err != nil {
		return "", apperrors.Wrap(apperrors.KindInvalidInput, UnsupportedLocaleKey, "parse form", err)
	}
	value := r.PostForm.Get(LangParam)
	if value == "" {
		value = r.Form.Get(LangParam)
	}
	locale, ok := platformi18n.ParseLocale(value)
	if !ok {
		return "", apperrors.EK(apperrors.KindInvalidInput, UnsupportedLocaleKey, fmt.Sprintf("unsupported locale %q", value))
	}
	return locale, nil
}

// SuggestedLocale matches the Accept-Language header.
func SuggestedLocale(r *http.Request) (platformi18n.Locale, bool) {
	if r == nil {
		return "", false
	}
	return platformi18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}

// SetContentLanguage advertises the rendering locale on the response.
func SetContentLanguage(w http.ResponseWriter, locale platformi18n.Locale) {
	if w == nil || !locale.IsSupported() {
		return
	}
	w.Header().Set("Content-Language", locale.Tag().String())
}
