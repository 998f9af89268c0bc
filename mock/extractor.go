// Package mock provides function-field mocks of the mylist interfaces for tests.
package mock

import "github.com/fwojciec/mylist"

var _ mylist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mylist.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) ([]*mylist.Item, error)
}

func (e *Extractor) Extract(html string, baseURL string) ([]*mylist.Item, error) {
	return e.ExtractFn(html, baseURL)
}

var _ mylist.LocaleDetector = (*LocaleDetector)(nil)

// LocaleDetector is a mock implementation of mylist.LocaleDetector.
type LocaleDetector struct {
	DetectFn func(html string) mylist.Locale
}

func (d *LocaleDetector) Detect(html string) mylist.Locale {
	return d.DetectFn(html)
}
