package mylist

import "io"

// Page is the input of the viewer page.
type Page struct {
	Title   string
	Profile *Profile
	Items   []*Item

	// BaseURL is used for items whose own URL carries no host.
	BaseURL string

	// Order is the initial selection of the sort control.
	Order SortOrder
}

// PageRenderer renders a self-contained viewer page.
type PageRenderer interface {
	Render(w io.Writer, page *Page) error
}

// FileStore persists output files with atomic semantics.
// Save stages a file; Commit publishes every staged file; Abort discards them.
type FileStore interface {
	Save(path string, data []byte) error
	Commit() error
	Abort() error
}

// Opener opens a local file in the user's default application.
type Opener interface {
	Open(path string) error
}
