package mylist

import (
	"context"
	"time"
)

// SeenStore remembers which items were marked seen across runs.
type SeenStore interface {
	// MarkSeen records the keys as seen. Empty keys are ignored.
	MarkSeen(ctx context.Context, keys []string) error

	// FindSeen returns which of keys have been recorded as seen.
	FindSeen(ctx context.Context, keys []string) (map[string]bool, error)
}

// ApplySeen records the seen items of items in store, then marks every item
// the store already knows as seen. Returns the number of items newly marked.
func ApplySeen(ctx context.Context, store SeenStore, items []*Item) (int, error) {
	var seen, keys []string
	for _, item := range items {
		key := item.Key()
		if key == "" {
			continue
		}
		keys = append(keys, key)
		if item.Seen {
			seen = append(seen, key)
		}
	}

	if len(seen) > 0 {
		if err := store.MarkSeen(ctx, seen); err != nil {
			return 0, err
		}
	}

	known, err := store.FindSeen(ctx, keys)
	if err != nil {
		return 0, err
	}

	var n int
	for _, item := range items {
		if !item.Seen && known[item.Key()] {
			item.Seen = true
			n++
		}
	}
	return n, nil
}

// Snapshot records one processed input.
type Snapshot struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Locale      Locale    `json:"locale"`
	ContentHash string    `json:"contentHash"`
	ItemCount   int       `json:"itemCount"`
	SeenCount   int       `json:"seenCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "snapshot source required")
	}
	if s.ItemCount < 0 {
		return Errorf(EINVALID, "snapshot item count must not be negative")
	}
	return nil
}

// SnapshotService records the history of processed inputs.
type SnapshotService interface {
	// CreateSnapshot assigns an ID and creation time and stores the snapshot.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshots returns stored snapshots, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
