// Package goquery implements snapshot parsing using github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mylist"
)

var _ mylist.Extractor = (*Extractor)(nil)

// Selectors for the markup of a saved list page.
const (
	trackingSelector = "[data-ui-tracking-context]"
	linkSelector     = "a[href]"
	fallbackSelector = ".fallback-text-container p.fallback-text"
	watchSelector    = `a[href*="/watch/"]`
	cardSelector     = "div.title-card"
)

var (
	watchPattern   = regexp.MustCompile(`/watch/(\d+)`)
	unifiedPattern = regexp.MustCompile(`:(\d+)$`)
)

// Extractor finds list items in a page snapshot. Items are located through
// their tracking-context attribute; when the profile allows it, plain
// /watch/ links are scanned if that finds nothing.
type Extractor struct {
	profile *mylist.Profile
}

// NewExtractor creates a new Extractor configured by profile.
func NewExtractor(profile *mylist.Profile) *Extractor {
	return &Extractor{profile: profile}
}

// Extract parses html and returns the items in document order.
func (e *Extractor) Extract(html string, baseURL string) ([]*mylist.Item, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, mylist.Errorf(mylist.EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, mylist.Errorf(mylist.EINVALID, "base URL %q is not absolute", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mylist.Errorf(mylist.EINVALID, "failed to parse HTML: %v", err)
	}

	items := e.extractTracked(doc, base)
	if len(items) == 0 && e.profile.AnchorFallback {
		items = e.extractWatchLinks(doc, base)
	}
	return items, nil
}

func (e *Extractor) extractTracked(doc *goquery.Document, base *url.URL) []*mylist.Item {
	var items []*mylist.Item

	doc.Find(trackingSelector).Each(func(_ int, el *goquery.Selection) {
		raw, _ := el.Attr("data-ui-tracking-context")
		ctx := DecodeTrackingContext(raw)

		link := el.Find(linkSelector).First()
		if link.Length() == 0 {
			return
		}
		href := strings.TrimSpace(attr(link, "href"))
		cleanHref := stripQuery(href)

		unified := ctx.Get("unifiedEntityId")
		if unified == "" {
			unified = strings.TrimSpace(attr(el, "data-unified-entity-id"))
		}

		id := resolveVideoID(ctx, unified, cleanHref)
		if id == "" && !e.profile.KeepUnidentified {
			return
		}

		aria := strings.TrimSpace(attr(link, "aria-label"))
		fallback := strings.TrimSpace(el.Find(fallbackSelector).First().Text())
		img := link.Find("img").First()

		title := firstNonEmpty(aria, fallback, strings.TrimSpace(attr(img, "alt")))
		if title == "" && e.profile.TextTitleFallback {
			title = collapseSpace(link.Text())
		}
		if title == "" {
			title = e.profile.Placeholder(id)
		}

		items = append(items, &mylist.Item{
			Title:           title,
			ID:              id,
			URL:             e.itemURL(base, id, cleanHref),
			HrefOriginal:    href,
			UnifiedEntityID: unified,
			ListID:          ctx.Get("list_id"),
			Location:        ctx.Get("location"),
			Rank:            ctx.Get("rank"),
			Row:             ctx.Get("row"),
			TrackID:         ctx.Get("track_id"),
			RequestID:       ctx.Get("request_id"),
			LolomoID:        ctx.Get("lolomo_id"),
			ImageKey:        ctx.Get("image_key"),
			SuppVideoID:     ctx.Get("supp_video_id"),
			AppView:         ctx.Get("appView"),
			ImageURL:        strings.TrimSpace(attr(img, "src")),
			AriaLabel:       aria,
			TitleFallback:   fallback,
			ContainerID:     attr(el.Parent().Closest(cardSelector), "id"),
			TrackingUUID:    attr(el, "data-tracking-uuid"),
			TrackingContext: queryParam(href, "tctx"),
		})
	})

	return items
}

// extractWatchLinks builds items from bare /watch/ links, without the
// tracking context.
func (e *Extractor) extractWatchLinks(doc *goquery.Document, base *url.URL) []*mylist.Item {
	var items []*mylist.Item

	doc.Find(watchSelector).Each(func(_ int, link *goquery.Selection) {
		href := strings.TrimSpace(attr(link, "href"))
		m := watchPattern.FindStringSubmatch(stripQuery(href))
		if m == nil {
			return
		}
		id := m[1]

		aria := strings.TrimSpace(attr(link, "aria-label"))
		title := firstNonEmpty(aria, collapseSpace(link.Text()))
		if title == "" {
			title = e.profile.Placeholder(id)
		}

		items = append(items, &mylist.Item{
			Title:        title,
			ID:           id,
			URL:          resolve(base, "/watch/"+id),
			HrefOriginal: href,
			ImageURL:     strings.TrimSpace(attr(link.Find("img").First(), "src")),
			AriaLabel:    aria,
		})
	})

	return items
}

// itemURL returns the absolute address of an item.
func (e *Extractor) itemURL(base *url.URL, id, cleanHref string) string {
	if id != "" && e.profile.CanonicalWatchURL {
		return resolve(base, "/watch/"+id)
	}
	if cleanHref == "" {
		return ""
	}
	return resolve(base, cleanHref)
}

// resolveVideoID tries the context's video_id, then the unified entity id,
// then the /watch/ path of the link. Returns the empty string if none match.
func resolveVideoID(ctx TrackingContext, unified, cleanHref string) string {
	if id := ctx.Get("video_id"); mylist.IsVideoID(id) {
		return id
	}
	if m := unifiedPattern.FindStringSubmatch(unified); m != nil {
		return m[1]
	}
	if m := watchPattern.FindStringSubmatch(cleanHref); m != nil {
		return m[1]
	}
	return ""
}

// resolve resolves href against base. Unparseable hrefs resolve to the
// empty string.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// stripQuery drops the query string and fragment from href.
func stripQuery(href string) string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		return href[:i]
	}
	return href
}

func queryParam(href, key string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get(key)
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
