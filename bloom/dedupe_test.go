package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/mylist"
	"github.com/fwojciec/mylist/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicator_Dedupe(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence in order", func(t *testing.T) {
		t.Parallel()

		items := []*mylist.Item{
			{ID: "100", Title: "first"},
			{ID: "200", Title: "other"},
			{ID: "100", Title: "second"},
			{ID: "300"},
			{ID: "200"},
		}

		got := bloom.NewDeduplicator().Dedupe(items)

		require.Len(t, got, 3)
		assert.Same(t, items[0], got[0])
		assert.Same(t, items[1], got[1])
		assert.Same(t, items[3], got[2])
		assert.Equal(t, "first", got[0].Title)
	})

	t.Run("falls back to original href", func(t *testing.T) {
		t.Parallel()

		items := []*mylist.Item{
			{HrefOriginal: "/title/a"},
			{HrefOriginal: "/title/a"},
			{HrefOriginal: "/title/b"},
		}

		got := bloom.NewDeduplicator().Dedupe(items)

		require.Len(t, got, 2)
		assert.Same(t, items[0], got[0])
		assert.Same(t, items[2], got[1])
	})

	t.Run("drops items without key", func(t *testing.T) {
		t.Parallel()

		got := bloom.NewDeduplicator().Dedupe([]*mylist.Item{{Title: "no key"}, {ID: "1"}})

		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bloom.NewDeduplicator().Dedupe(nil))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		var items []*mylist.Item
		for i := range 500 {
			items = append(items, &mylist.Item{ID: fmt.Sprint(i % 173)})
		}

		d := bloom.NewDeduplicator()
		once := d.Dedupe(items)
		twice := d.Dedupe(once)

		assert.Len(t, once, 173)
		assert.Equal(t, once, twice)
	})

	t.Run("keeps every distinct key despite filter collisions", func(t *testing.T) {
		t.Parallel()

		var items []*mylist.Item
		for i := range 5000 {
			items = append(items, &mylist.Item{ID: fmt.Sprint(i)})
		}

		got := bloom.NewDeduplicator().Dedupe(items)

		assert.Len(t, got, 5000)
	})
}
