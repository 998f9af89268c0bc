package mylist

import "strings"

// Locale identifies the language of a list export.
type Locale string

// Supported locales.
const (
	LocaleUnknown Locale = ""
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// LocaleAuto asks the entry point to detect the locale from the snapshot.
const LocaleAuto Locale = "auto"

// DefaultBaseURL is the site the snapshot was saved from.
const DefaultBaseURL = "https://www.netflix.com"

// SortOrder names an ordering of items.
type SortOrder string

// Sort orders understood by Sorter and the viewer page.
const (
	SortOriginal     SortOrder = "original"
	SortTitleAsc     SortOrder = "title-asc"
	SortTitleDesc    SortOrder = "title-desc"
	SortPositionAsc  SortOrder = "position-asc"
	SortPositionDesc SortOrder = "position-desc"
)

// SortOption is an entry of the viewer's sort control.
type SortOption struct {
	Order SortOrder `json:"order"`
	Label string    `json:"label"`
}

// Profile collects every behavior that differs between the English and
// Spanish exports, so that a single pipeline serves both.
type Profile struct {
	Locale Locale

	// Schema is the CSV column layout written and read.
	Schema Schema

	// ByteOrderMark prefixes written CSV with a UTF-8 BOM.
	ByteOrderMark bool

	// KeepUnidentified retains extracted items with no resolvable ID
	// instead of discarding them.
	KeepUnidentified bool

	// AnchorFallback scans plain /watch/ links when the tracking-context
	// strategy finds nothing.
	AnchorFallback bool

	// TextTitleFallback uses the link's visible text as a last title source.
	TextTitleFallback bool

	// CanonicalWatchURL builds the item URL from the ID rather than the href.
	CanonicalWatchURL bool

	// PersistSeen makes the viewer remember checkbox state in the browser
	// and mark an item seen when one of its links is followed.
	PersistSeen bool

	SortOptions    []SortOption
	ViewerOut      string
	ExportFilename string
	PageTitle      string
	Subtitle       string
	Labels         Labels

	// Placeholder returns the title used when none can be resolved.
	Placeholder func(id string) string
}

// Labels are the viewer's user-facing strings.
type Labels struct {
	SortBy     string `json:"sortBy"`
	Export     string `json:"export"`
	Seen       string `json:"seen"`
	TitlePage  string `json:"titlePage"`
	Watch      string `json:"watch"`
	Count      string `json:"count"`
	SeenHeader string `json:"seenHeader"`
	TitleHead  string `json:"titleHeader"`
}

// EnglishProfile mirrors the minimal English export.
var EnglishProfile = &Profile{
	Locale: LocaleEnglish,
	Schema: MinimalSchema,
	SortOptions: []SortOption{
		{Order: SortOriginal, Label: "Original Order"},
		{Order: SortTitleAsc, Label: "A-Z"},
		{Order: SortTitleDesc, Label: "Z-A"},
	},
	ViewerOut:      "index.html",
	ExportFilename: "netflix_mylist_updated.csv",
	PageTitle:      "Netflix My List – Viewer",
	Subtitle:       "Mark titles as seen, sort them and export an updated CSV.",
	Labels: Labels{
		SortBy:     "Sort by:",
		Export:     "Export CSV (with Progress)",
		Seen:       "Seen",
		TitlePage:  "Title Page ↗",
		Watch:      "Watch ▶",
		Count:      "titles found",
		SeenHeader: "seen",
		TitleHead:  "title",
	},
	Placeholder: func(id string) string {
		if id == "" {
			return "Unknown"
		}
		return "Unknown_" + id
	},
}

// SpanishProfile mirrors the full Spanish export with provenance columns.
var SpanishProfile = &Profile{
	Locale:            LocaleSpanish,
	Schema:            FullSchema,
	ByteOrderMark:     true,
	KeepUnidentified:  true,
	AnchorFallback:    true,
	TextTitleFallback: true,
	CanonicalWatchURL: true,
	PersistSeen:       true,
	SortOptions: []SortOption{
		{Order: SortTitleAsc, Label: "Título A→Z"},
		{Order: SortTitleDesc, Label: "Título Z→A"},
		{Order: SortPositionAsc, Label: "Rank ↑"},
		{Order: SortPositionDesc, Label: "Rank ↓"},
	},
	ViewerOut:      "netflix_mylist_viewer.html",
	ExportFilename: "netflix_mylist_actualizado.csv",
	PageTitle:      "Netflix My List – Viewer (Con Visto)",
	Subtitle:       "Marca “visto”, ordena y exporta un CSV actualizado.",
	Labels: Labels{
		SortBy:     "Ordenar por:",
		Export:     "Exportar CSV actualizado",
		Seen:       "Marcado como visto",
		TitlePage:  "Ficha ↗",
		Watch:      "Ver en Netflix",
		Count:      "títulos encontrados",
		SeenHeader: "visto",
		TitleHead:  "titulo",
	},
	Placeholder: func(id string) string {
		if id == "" {
			return "(sin título)"
		}
		return "(sin título) " + id
	},
}

// FindProfile returns the profile for a locale. Regional tags such as
// "es-MX" resolve to their language. Returns ENOTFOUND for other locales.
func FindProfile(locale Locale) (*Profile, error) {
	lang, _, _ := strings.Cut(strings.ToLower(string(locale)), "-")
	switch Locale(lang) {
	case LocaleEnglish:
		return EnglishProfile, nil
	case LocaleSpanish:
		return SpanishProfile, nil
	}
	return nil, Errorf(ENOTFOUND, "no profile for locale %q", locale)
}

// HasSortOrder reports whether the viewer offers order.
func (p *Profile) HasSortOrder(order SortOrder) bool {
	for _, o := range p.SortOptions {
		if o.Order == order {
			return true
		}
	}
	return false
}

// LocaleDetector identifies the locale of a snapshot.
type LocaleDetector interface {
	// Detect returns LocaleUnknown when the locale cannot be determined.
	Detect(html string) Locale
}
