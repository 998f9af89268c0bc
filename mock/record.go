package mock

import (
	"io"

	"github.com/fwojciec/mylist"
)

// Compile-time interface verification.
var (
	_ mylist.RecordReader = (*RecordReader)(nil)
	_ mylist.RecordWriter = (*RecordWriter)(nil)
	_ mylist.Sorter       = (*Sorter)(nil)
	_ mylist.Deduplicator = (*Deduplicator)(nil)
)

// RecordReader is a mock implementation of mylist.RecordReader.
type RecordReader struct {
	ReadItemsFn func(r io.Reader) ([]*mylist.Item, error)
}

func (m *RecordReader) ReadItems(r io.Reader) ([]*mylist.Item, error) {
	return m.ReadItemsFn(r)
}

// RecordWriter is a mock implementation of mylist.RecordWriter.
type RecordWriter struct {
	WriteItemsFn func(w io.Writer, items []*mylist.Item) error
}

func (m *RecordWriter) WriteItems(w io.Writer, items []*mylist.Item) error {
	return m.WriteItemsFn(w, items)
}

// Sorter is a mock implementation of mylist.Sorter.
type Sorter struct {
	SortFn func(items []*mylist.Item, order mylist.SortOrder) error
}

func (m *Sorter) Sort(items []*mylist.Item, order mylist.SortOrder) error {
	return m.SortFn(items, order)
}

// Deduplicator is a mock implementation of mylist.Deduplicator.
type Deduplicator struct {
	DedupeFn func(items []*mylist.Item) []*mylist.Item
}

func (m *Deduplicator) Dedupe(items []*mylist.Item) []*mylist.Item {
	return m.DedupeFn(items)
}
