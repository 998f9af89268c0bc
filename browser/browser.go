// Package browser opens files in the system's default application.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fwojciec/mylist"
)

// Ensure Opener implements mylist.Opener at compile time.
var _ mylist.Opener = (*Opener)(nil)

// Opener launches the platform's open command for a local file.
type Opener struct {
	// GOOS selects the open command. Defaults to runtime.GOOS.
	GOOS string

	// Start runs the command without waiting for it to exit.
	Start func(name string, args ...string) error
}

// NewOpener creates an Opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		GOOS: runtime.GOOS,
		Start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open opens path in the default browser.
// Supports macOS, Linux, and Windows platforms.
func (o *Opener) Open(path string) error {
	target, err := FileURL(path)
	if err != nil {
		return err
	}

	var name string
	var args []string
	switch o.GOOS {
	case "darwin":
		name, args = "open", []string{target}
	case "linux", "freebsd", "openbsd", "netbsd":
		name, args = "xdg-open", []string{target}
	case "windows":
		name, args = "cmd", []string{"/c", "start", "", target}
	default:
		return mylist.Errorf(mylist.EINVALID, "unsupported platform: %s", o.GOOS)
	}

	if err := o.Start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// FileURL converts a local path to an absolute file:// URL.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}
