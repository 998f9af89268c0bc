package fs

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/mylist"
	"golang.org/x/net/html/charset"
)

// ReadSnapshot reads a saved page and returns it as UTF-8 text. The
// encoding is taken from a byte order mark or a meta charset declaration,
// falling back to content sniffing.
func ReadSnapshot(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", mylist.Errorf(mylist.ENOTFOUND, "snapshot not found: %s", path)
	} else if err != nil {
		return "", err
	}

	r, err := charset.NewReader(bytes.NewReader(data), "text/html")
	if err != nil {
		return "", mylist.Errorf(mylist.EINVALID, "failed to decode snapshot: %v", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", mylist.Errorf(mylist.EINVALID, "failed to decode snapshot: %v", err)
	}
	return strings.TrimPrefix(string(text), "\ufeff"), nil
}
