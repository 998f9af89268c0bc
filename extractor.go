package mylist

// Extractor parses a page snapshot into items.
type Extractor interface {
	// Extract returns the items found in html. Relative links are resolved
	// against baseURL. Malformed fragments degrade to empty fields or
	// skipped elements; only an unusable baseURL is an error.
	Extract(html string, baseURL string) ([]*Item, error)
}
