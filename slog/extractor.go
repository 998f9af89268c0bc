// Package slog provides logging decorators using log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mylist"
)

// Ensure LoggingExtractor implements mylist.Extractor.
var _ mylist.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   mylist.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mylist.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, baseURL string) (items []*mylist.Item, err error) {
	defer func(begin time.Time) {
		var unidentified int
		for _, item := range items {
			if item.ID == "" {
				unidentified++
			}
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"base", baseURL,
			"count", len(items),
			"unidentified", unidentified,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, baseURL)
}

// Ensure LoggingDetector implements mylist.LocaleDetector.
var _ mylist.LocaleDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a LocaleDetector with debug logging.
type LoggingDetector struct {
	next   mylist.LocaleDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next mylist.LocaleDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the detected locale.
func (d *LoggingDetector) Detect(html string) mylist.Locale {
	begin := time.Now()
	locale := d.next.Detect(html)
	name := string(locale)
	if locale == mylist.LocaleUnknown {
		name = "(unknown)"
	}
	d.logger.Debug("locale detection",
		"locale", name,
		"duration", time.Since(begin),
	)
	return locale
}
