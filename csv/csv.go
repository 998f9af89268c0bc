// Package csv implements item serialization using encoding/csv.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/mylist"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Compile-time interface verification.
var (
	_ mylist.RecordReader = (*Reader)(nil)
	_ mylist.RecordWriter = (*Writer)(nil)
)

// Reader decodes items from CSV, locating columns by header name.
type Reader struct {
	schema mylist.Schema
}

// NewReader creates a new Reader that fills the fields of schema.
// Each column is looked up under its name and then its aliases.
func NewReader(schema mylist.Schema) *Reader {
	return &Reader{schema: schema}
}

// ReadItems reads every data row of r. A leading byte order mark is
// skipped. Missing columns leave their fields empty; rows shorter or longer
// than the header are accepted.
func (r *Reader) ReadItems(rd io.Reader) ([]*mylist.Item, error) {
	br := bufio.NewReader(rd)
	if prefix, err := br.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = br.Discard(len(byteOrderMark))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, mylist.Errorf(mylist.EINVALID, "failed to read CSV header: %v", err)
	}
	index := r.columnIndex(header)

	var items []*mylist.Item
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mylist.Errorf(mylist.EINVALID, "failed to read CSV: %v", err)
		}

		item := &mylist.Item{}
		for i, c := range r.schema {
			if idx := index[i]; idx >= 0 && idx < len(row) {
				c.Set(item, row[idx])
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// columnIndex returns, for each schema column, the position of the first
// header cell matching its name or an alias, or -1.
func (r *Reader) columnIndex(header []string) []int {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	index := make([]int, len(r.schema))
	for i, c := range r.schema {
		index[i] = -1
		for _, name := range c.Names() {
			if pos, ok := positions[name]; ok {
				index[i] = pos
				break
			}
		}
	}
	return index
}

// Writer encodes items as CSV in schema order.
type Writer struct {
	schema        mylist.Schema
	byteOrderMark bool
}

// NewWriter creates a new Writer. When byteOrderMark is set the output
// starts with a UTF-8 BOM so spreadsheet applications detect the encoding.
func NewWriter(schema mylist.Schema, byteOrderMark bool) *Writer {
	return &Writer{schema: schema, byteOrderMark: byteOrderMark}
}

// WriteItems writes the header row and one CSV row per item, using CRLF
// line endings.
func (w *Writer) WriteItems(out io.Writer, items []*mylist.Item) error {
	if w.byteOrderMark {
		if _, err := out.Write(byteOrderMark); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(out)
	cw.UseCRLF = true

	if err := cw.Write(w.schema.Header()); err != nil {
		return err
	}
	for _, item := range items {
		if err := cw.Write(w.schema.Row(item)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
