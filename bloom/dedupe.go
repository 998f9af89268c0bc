package bloom

import "github.com/fwojciec/mylist"

// DefaultFalsePositiveRate sizes the filter used by Deduplicator.
const DefaultFalsePositiveRate = 0.001

// Compile-time interface verification.
var _ mylist.Deduplicator = (*Deduplicator)(nil)

// Deduplicator drops repeated items. Keys the Bloom filter has never seen
// are accepted without further checks; possible repeats are confirmed
// against an exact set, so false positives never drop an item.
type Deduplicator struct {
	fpRate float64
}

// NewDeduplicator creates a new Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{fpRate: DefaultFalsePositiveRate}
}

// Dedupe returns the first item for every distinct key in input order.
// Items with an empty key are dropped.
func (d *Deduplicator) Dedupe(items []*mylist.Item) []*mylist.Item {
	filter := NewFilter(uint(len(items)), d.fpRate)
	exact := make(map[string]struct{}, len(items))

	out := make([]*mylist.Item, 0, len(items))
	for _, item := range items {
		key := item.Key()
		if key == "" {
			continue
		}
		if filter.Test(key) {
			if _, dup := exact[key]; dup {
				continue
			}
		}
		filter.Add(key)
		exact[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
