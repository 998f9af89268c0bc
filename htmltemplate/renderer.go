// Package htmltemplate renders the viewer page using html/template.
package htmltemplate

import (
	_ "embed"
	"html/template"
	"io"
	"net/url"

	"github.com/fwojciec/mylist"
)

// StorageKey is the browser storage key under which the viewer keeps
// seen state.
const StorageKey = "netflix_mylist_seen_v1"

//go:embed viewer.html.tmpl
var viewerTemplate string

var tmpl = template.Must(template.New("viewer").Parse(viewerTemplate))

// Ensure Renderer implements mylist.PageRenderer at compile time.
var _ mylist.PageRenderer = (*Renderer)(nil)

// Renderer renders a self-contained viewer page. Records are embedded as
// a JSON literal and the page needs no network access except for links
// and poster images.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type pageData struct {
	Lang        string
	Title       string
	Subtitle    string
	Labels      mylist.Labels
	SortOptions []sortOption
	Config      pageConfig
	Records     []Record
}

type sortOption struct {
	Order    mylist.SortOrder
	Label    string
	Selected bool
}

type pageConfig struct {
	Lang           string        `json:"lang"`
	PersistSeen    bool          `json:"persistSeen"`
	StorageKey     string        `json:"storageKey"`
	ExportFilename string        `json:"exportFilename"`
	Headers        []string      `json:"headers"`
	Labels         mylist.Labels `json:"labels"`
}

// Record is the per-item view model embedded in the page.
type Record struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	ID       string `json:"id"`
	Rank     string `json:"rank"`
	ImageURL string `json:"imageUrl"`
	Seen     bool   `json:"seen"`
	TitleURL string `json:"titleUrl"`
	WatchURL string `json:"watchUrl"`
}

// Render writes the viewer page for page to w.
func (r *Renderer) Render(w io.Writer, page *mylist.Page) error {
	if page.Profile == nil {
		return mylist.Errorf(mylist.EINVALID, "page profile required")
	}
	return tmpl.Execute(w, newPageData(page))
}

func newPageData(page *mylist.Page) *pageData {
	p := page.Profile

	title := page.Title
	if title == "" {
		title = p.PageTitle
	}

	var selected mylist.SortOrder
	if p.HasSortOrder(page.Order) {
		selected = page.Order
	} else if len(p.SortOptions) > 0 {
		selected = p.SortOptions[0].Order
	}
	options := make([]sortOption, len(p.SortOptions))
	for i, o := range p.SortOptions {
		options[i] = sortOption{Order: o.Order, Label: o.Label, Selected: o.Order == selected}
	}

	return &pageData{
		Lang:        string(p.Locale),
		Title:       title,
		Subtitle:    p.Subtitle,
		Labels:      p.Labels,
		SortOptions: options,
		Config: pageConfig{
			Lang:           string(p.Locale),
			PersistSeen:    p.PersistSeen,
			StorageKey:     StorageKey,
			ExportFilename: p.ExportFilename,
			Headers:        []string{p.Labels.TitleHead, "id", "url", p.Labels.SeenHeader},
			Labels:         p.Labels,
		},
		Records: NewRecords(page.Items, page.BaseURL),
	}
}

// NewRecords builds the view model of items. Link targets use the scheme
// and host of each item's URL, falling back to baseURL.
func NewRecords(items []*mylist.Item, baseURL string) []Record {
	if baseURL == "" {
		baseURL = mylist.DefaultBaseURL
	}

	records := make([]Record, len(items))
	for i, item := range items {
		rec := Record{
			Index:    i,
			Title:    item.Title,
			ID:       item.ID,
			Rank:     item.Rank,
			ImageURL: item.ImageURL,
			Seen:     item.Seen,
			WatchURL: item.URL,
		}
		if item.ID != "" {
			base := siteBase(item.URL, baseURL)
			rec.TitleURL = base + "/title/" + url.PathEscape(item.ID)
			rec.WatchURL = base + "/watch/" + url.PathEscape(item.ID)
		}
		records[i] = rec
	}
	return records
}

// siteBase returns scheme://host of rawURL, or fallback when it has none.
func siteBase(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		u, err = url.Parse(fallback)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return mylist.DefaultBaseURL
		}
	}
	return u.Scheme + "://" + u.Host
}
