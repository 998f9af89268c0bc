package mylist

import (
	"strings"
)

// Item represents one saved title from the list. Every field is plain text
// and defaults to the empty string; only Seen is a flag.
type Item struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	URL   string `json:"url"`

	// Provenance copied from the snapshot's tracking metadata.
	HrefOriginal    string `json:"hrefOriginal"`
	UnifiedEntityID string `json:"unifiedEntityId"`
	ListID          string `json:"listId"`
	Location        string `json:"location"`
	Rank            string `json:"rank"`
	Row             string `json:"row"`
	TrackID         string `json:"trackId"`
	RequestID       string `json:"requestId"`
	LolomoID        string `json:"lolomoId"`
	ImageKey        string `json:"imageKey"`
	SuppVideoID     string `json:"suppVideoId"`
	AppView         string `json:"appView"`
	ImageURL        string `json:"imageUrl"`
	AriaLabel       string `json:"ariaLabel"`
	TitleFallback   string `json:"titleFallback"`
	ContainerID     string `json:"containerId"`
	TrackingUUID    string `json:"trackingUuid"`
	TrackingContext string `json:"tctx"`

	Seen bool `json:"seen"`
}

// Key returns the identity used for deduplication and seen-state storage:
// the ID, or the original href when the ID is empty.
func (i *Item) Key() string {
	if id := strings.TrimSpace(i.ID); id != "" {
		return id
	}
	return strings.TrimSpace(i.HrefOriginal)
}

// IsVideoID reports whether s is a non-empty string of ASCII decimal digits.
func IsVideoID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SeenMarker is the only spelling written for a seen item.
const SeenMarker = "1"

// ParseSeen interprets a seen cell. Empty means unseen; a handful of truthy
// spellings from hand-edited spreadsheets are accepted.
func ParseSeen(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "si", "sí", "x":
		return true
	}
	return false
}

// FormatSeen returns SeenMarker for true and the empty string for false.
func FormatSeen(seen bool) string {
	if seen {
		return SeenMarker
	}
	return ""
}

// Deduplicator removes items that share a Key.
type Deduplicator interface {
	// Dedupe returns the first item for every distinct Key, in input order.
	// Items with an empty Key are dropped.
	Dedupe(items []*Item) []*Item
}
