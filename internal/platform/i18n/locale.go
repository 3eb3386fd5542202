package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the fixed dictionaries shipped with the binary.
type Locale string

const (
	ES Locale = "ES"
	EN Locale = "EN"
	PT Locale = "PT"
)

var supportedLocales = []Locale{ES, EN, PT}

var localeTags = map[Locale]language.Tag{
	ES: language.Spanish,
	EN: language.English,
	PT: language.Portuguese,
}

var tagMatcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
})

// Default returns the locale active at startup.
func Default() Locale {
	return ES
}

// Supported returns the supported locales in declaration order.
func Supported() []Locale {
	out := make([]Locale, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// SupportedCodes returns the supported locales as plain strings.
func SupportedCodes() []string {
	out := make([]string, 0, len(supportedLocales))
	for _, locale := range supportedLocales {
		out = append(out, string(locale))
	}
	return out
}

// IsSupported reports whether l has a dictionary.
func (l Locale) IsSupported() bool {
	_, ok := localeTags[l]
	return ok
}

// Tag returns the BCP 47 tag for l, or language.Und when unsupported.
func (l Locale) Tag() language.Tag {
	if tag, ok := localeTags[l]; ok {
		return tag
	}
	return language.Und
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// ParseLocale maps user input to a supported locale. It accepts the
// upper-case codes ("ES") in any case as well as BCP 47 tags ("pt-BR").
func ParseLocale(value string) (Locale, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if locale := Locale(strings.ToUpper(trimmed)); locale.IsSupported() {
		return locale, true
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	for _, locale := range supportedLocales {
		if supportedBase, _ := locale.Tag().Base(); supportedBase == base {
			return locale, true
		}
	}
	return "", false
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) (Locale, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supportedLocales) {
		return "", false
	}
	return supportedLocales[index], true
}
