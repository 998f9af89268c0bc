// Package collate implements item ordering using golang.org/x/text/collate.
package collate

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/fwojciec/mylist"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ensure Sorter implements mylist.Sorter at compile time.
var _ mylist.Sorter = (*Sorter)(nil)

// Sorter orders items with the collation rules of a language, so that
// accented titles sort next to their unaccented forms.
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a Sorter for locale. Unknown locales use the
// root collation.
func NewSorter(locale mylist.Locale) *Sorter {
	tag, err := language.Parse(string(locale))
	if err != nil {
		tag = language.Und
	}
	return &Sorter{tag: tag}
}

// Sort reorders items in place. Ties keep their relative order.
func (s *Sorter) Sort(items []*mylist.Item, order mylist.SortOrder) error {
	switch order {
	case mylist.SortOriginal, "":
		return nil
	case mylist.SortTitleAsc, mylist.SortTitleDesc:
		c := collate.New(s.tag, collate.IgnoreCase)
		byTitle := func(a, b *mylist.Item) int {
			return c.CompareString(a.Title, b.Title)
		}
		if order == mylist.SortTitleDesc {
			slices.SortStableFunc(items, func(a, b *mylist.Item) int { return byTitle(b, a) })
		} else {
			slices.SortStableFunc(items, byTitle)
		}
		return nil
	case mylist.SortPositionAsc, mylist.SortPositionDesc:
		sortByPosition(items, order == mylist.SortPositionDesc)
		return nil
	}
	return mylist.Errorf(mylist.EINVALID, "unknown sort order %q", order)
}

// sortByPosition orders by numeric rank, using the original index for
// items without one.
func sortByPosition(items []*mylist.Item, desc bool) {
	type entry struct {
		item *mylist.Item
		pos  float64
	}
	entries := make([]entry, len(items))
	for i, item := range items {
		pos, err := strconv.ParseFloat(item.Rank, 64)
		if err != nil {
			pos = float64(i)
		}
		entries[i] = entry{item: item, pos: pos}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		if desc {
			return cmp.Compare(b.pos, a.pos)
		}
		return cmp.Compare(a.pos, b.pos)
	})
	for i, e := range entries {
		items[i] = e.item
	}
}
