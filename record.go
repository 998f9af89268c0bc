package mylist

import "io"

// RecordReader decodes items from tabular text.
type RecordReader interface {
	// ReadItems reads every row of r. Unknown columns are ignored and
	// missing columns leave fields empty.
	ReadItems(r io.Reader) ([]*Item, error)
}

// RecordWriter encodes items as tabular text.
type RecordWriter interface {
	// WriteItems writes a header row followed by one row per item.
	WriteItems(w io.Writer, items []*Item) error
}

// Sorter reorders items in place.
type Sorter interface {
	Sort(items []*Item, order SortOrder) error
}
