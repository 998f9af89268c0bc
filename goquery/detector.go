package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mylist"
)

var _ mylist.LocaleDetector = (*Detector)(nil)

// Detector identifies the locale of a saved page from its language markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect checks the root lang attribute, then og:locale, then the
// Content-Language meta tag. Returns LocaleUnknown if none names a
// supported language.
func (d *Detector) Detect(html string) mylist.Locale {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return mylist.LocaleUnknown
	}

	candidates := []string{
		attr(doc.Find("html").First(), "lang"),
		attr(doc.Find(`meta[property="og:locale"]`).First(), "content"),
		attr(doc.Find(`meta[http-equiv="Content-Language"]`).First(), "content"),
	}
	for _, c := range candidates {
		if locale := normalizeLocale(c); locale != mylist.LocaleUnknown {
			return locale
		}
	}
	return mylist.LocaleUnknown
}

// normalizeLocale maps tags like "es-ES" or "en_GB" to a supported Locale.
func normalizeLocale(tag string) mylist.Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	lang, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	switch mylist.Locale(lang) {
	case mylist.LocaleEnglish:
		return mylist.LocaleEnglish
	case mylist.LocaleSpanish:
		return mylist.LocaleSpanish
	}
	return mylist.LocaleUnknown
}
