package mock

import (
	"io"

	"github.com/fwojciec/mylist"
)

// Compile-time interface verification.
var (
	_ mylist.PageRenderer = (*PageRenderer)(nil)
	_ mylist.FileStore    = (*FileStore)(nil)
	_ mylist.Opener       = (*Opener)(nil)
)

// PageRenderer is a mock implementation of mylist.PageRenderer.
type PageRenderer struct {
	RenderFn func(w io.Writer, page *mylist.Page) error
}

func (r *PageRenderer) Render(w io.Writer, page *mylist.Page) error {
	return r.RenderFn(w, page)
}

// FileStore is a mock implementation of mylist.FileStore.
type FileStore struct {
	SaveFn   func(path string, data []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *FileStore) Save(path string, data []byte) error {
	return s.SaveFn(path, data)
}

func (s *FileStore) Commit() error {
	return s.CommitFn()
}

func (s *FileStore) Abort() error {
	return s.AbortFn()
}

// Opener is a mock implementation of mylist.Opener.
type Opener struct {
	OpenFn func(path string) error
}

func (o *Opener) Open(path string) error {
	return o.OpenFn(path)
}
