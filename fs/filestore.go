// Package fs provides file-based storage for snapshots and output files.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/mylist"
)

// Ensure FileStore implements mylist.FileStore at compile time.
var _ mylist.FileStore = (*FileStore)(nil)

// FileStore implements mylist.FileStore with atomic update semantics.
// Files are saved next to their destination with a .tmp suffix, then
// renamed into place on Commit.
type FileStore struct {
	staged []string
}

// NewFileStore creates a new FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func tempPath(path string) string {
	return path + ".tmp"
}

// Save writes data to a temporary file next to path, creating parent
// directories as needed. Saving the same path twice replaces the staged data.
func (s *FileStore) Save(path string, data []byte) error {
	if path == "" {
		return mylist.Errorf(mylist.EINVALID, "output path required")
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(tempPath(path), data, 0644); err != nil {
		return err
	}
	for _, p := range s.staged {
		if p == path {
			return nil
		}
	}
	s.staged = append(s.staged, path)
	return nil
}

// Commit moves every staged file to its final path, replacing any
// existing file.
func (s *FileStore) Commit() error {
	for i, path := range s.staged {
		if err := os.Rename(tempPath(path), path); err != nil {
			s.staged = s.staged[i:]
			return err
		}
	}
	s.staged = nil
	return nil
}

// Abort removes every staged file that has not been committed.
func (s *FileStore) Abort() error {
	var errs []error
	for _, path := range s.staged {
		if err := os.Remove(tempPath(path)); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	s.staged = nil
	return errors.Join(errs...)
}
