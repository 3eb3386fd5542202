package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Locale
		wantOK bool
	}{
		{input: "ES", want: ES, wantOK: true},
		{input: "en", want: EN, wantOK: true},
		{input: " pt ", want: PT, wantOK: true},
		{input: "pt-BR", want: PT, wantOK: true},
		{input: "en-GB", want: EN, wantOK: true},
		{input: "es-419", want: ES, wantOK: true},
		{input: "fr", wantOK: false},
		{input: "", wantOK: false},
		{input: "not a tag", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLocale(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ParseLocale(%q) ok = %t, want %t", tc.input, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseLocale(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   Locale
		wantOK bool
	}{
		{header: "pt-BR,pt;q=0.9,en;q=0.8", want: PT, wantOK: true},
		{header: "en-US,en;q=0.9", want: EN, wantOK: true},
		{header: "es", want: ES, wantOK: true},
		{header: "ja", wantOK: false},
		{header: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			t.Parallel()
			got, ok := MatchAcceptLanguage(tc.header)
			if ok != tc.wantOK {
				t.Fatalf("MatchAcceptLanguage(%q) ok = %t, want %t", tc.header, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("MatchAcceptLanguage(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestLocaleTag(t *testing.T) {
	t.Parallel()

	if EN.Tag() != language.English {
		t.Fatalf("EN.Tag() = %v, want %v", EN.Tag(), language.English)
	}
	if Locale("FR").Tag() != language.Und {
		t.Fatalf("unsupported tag = %v, want und", Locale("FR").Tag())
	}
	if Locale("FR").IsSupported() {
		t.Fatal("FR should not be supported")
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	got := Supported()
	got[0] = "XX"
	if Supported()[0] != ES {
		t.Fatalf("Supported() leaked internal slice")
	}
	if Default() != ES {
		t.Fatalf("Default() = %q, want ES", Default())
	}
}
