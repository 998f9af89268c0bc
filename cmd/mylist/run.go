package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/mylist"
	"github.com/fwojciec/mylist/fs"
	"github.com/fwojciec/mylist/goquery"
	listslog "github.com/fwojciec/mylist/slog"
	"github.com/fwojciec/mylist/sqlite"
)

// Run converts the input into the CSV file and the viewer page.
func (c *CLI) Run(deps *Dependencies) error {
	profile := deps.Profile

	items, source, err := c.loadItems(deps)
	if err != nil {
		return err
	}

	var restored int
	if deps.Seen != nil {
		if restored, err = mylist.ApplySeen(deps.Ctx, deps.Seen, items); err != nil {
			return fmt.Errorf("failed to apply seen state: %w", err)
		}
		deps.Logger.Debug("seen state applied", "restored", restored)
	}

	if c.Dedupe {
		before := len(items)
		items = deps.Deduper.Dedupe(items)
		deps.Logger.Debug("dedupe", "before", before, "after", len(items))
	}

	order := mylist.SortOrder(c.Sort)
	if err := deps.Sorter.Sort(items, order); err != nil {
		return err
	}

	csvPath, viewerPath, err := c.outputPaths(profile)
	if err != nil {
		return err
	}

	if err := c.writeOutputs(deps, items, order, csvPath, viewerPath); err != nil {
		return err
	}

	if deps.Snapshots != nil {
		snapshot := &mylist.Snapshot{
			Source:    source,
			Locale:    profile.Locale,
			ItemCount: len(items),
			SeenCount: countSeen(items),
		}
		if c.CSVIn == "" {
			snapshot.ContentHash = sqlite.HashContent(deps.HTML)
		}
		if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
			return fmt.Errorf("failed to record snapshot: %w", err)
		}
	}

	printSummary(deps.Stdout, len(items), csvPath, viewerPath)

	if c.Open && deps.Opener != nil {
		if err := deps.Opener.Open(viewerPath); err != nil {
			deps.Logger.Warn("could not open viewer", "path", viewerPath, "err", err)
		}
	}
	return nil
}

// resolveInput reads the saved page, unless items come from --csv-in, and
// resolves the output profile for it.
func (c *CLI) resolveInput(logger *slog.Logger) (string, *mylist.Profile, error) {
	var html string
	if c.CSVIn == "" {
		var err error
		if html, err = fs.ReadSnapshot(c.HTML); err != nil {
			return "", nil, err
		}
	}
	profile, err := c.profile(logger, html)
	if err != nil {
		return "", nil, err
	}
	return html, profile, nil
}

// profile resolves the output profile, detecting the locale from the page
// when asked to, and applies the unidentified-item override.
func (c *CLI) profile(logger *slog.Logger, html string) (*mylist.Profile, error) {
	locale := mylist.Locale(c.Locale)
	if locale == mylist.LocaleAuto {
		locale = listslog.NewLoggingDetector(goquery.NewDetector(), logger).Detect(html)
		if locale == mylist.LocaleUnknown {
			locale = mylist.LocaleEnglish
		}
	}

	base, err := mylist.FindProfile(locale)
	if err != nil {
		return nil, err
	}

	p := *base
	switch {
	case c.KeepUnidentified:
		p.KeepUnidentified = true
	case c.DropUnidentified:
		p.KeepUnidentified = false
	}
	return &p, nil
}

// loadItems reads the CSV input if given, otherwise extracts items from
// the saved page. Returns the items and the absolute path of their source.
func (c *CLI) loadItems(deps *Dependencies) ([]*mylist.Item, string, error) {
	if c.CSVIn != "" {
		f, err := os.Open(c.CSVIn)
		if os.IsNotExist(err) {
			return nil, "", mylist.Errorf(mylist.ENOTFOUND, "CSV input not found: %s", c.CSVIn)
		} else if err != nil {
			return nil, "", err
		}
		defer f.Close()

		items, err := deps.Reader.ReadItems(f)
		if err != nil {
			return nil, "", err
		}
		deps.Logger.Info("read csv", "path", c.CSVIn, "count", len(items))
		return items, absPath(c.CSVIn), nil
	}

	items, err := deps.Extractor.Extract(deps.HTML, c.BaseURL)
	if err != nil {
		return nil, "", err
	}
	return items, absPath(c.HTML), nil
}

func (c *CLI) outputPaths(profile *mylist.Profile) (string, string, error) {
	viewerOut := c.ViewerOut
	if viewerOut == "" {
		viewerOut = profile.ViewerOut
	}

	csvPath, err := filepath.Abs(c.Out)
	if err != nil {
		return "", "", err
	}
	viewerPath, err := filepath.Abs(viewerOut)
	if err != nil {
		return "", "", err
	}
	if csvPath == viewerPath {
		return "", "", mylist.Errorf(mylist.EINVALID, "CSV and viewer outputs must differ: %s", csvPath)
	}
	return csvPath, viewerPath, nil
}

// writeOutputs renders both outputs in memory and publishes them together.
// The viewer is rendered before anything is saved, and a failed save or
// commit leaves neither output behind.
func (c *CLI) writeOutputs(deps *Dependencies, items []*mylist.Item, order mylist.SortOrder, csvPath, viewerPath string) error {
	var csvBuf bytes.Buffer
	if err := deps.Writer.WriteItems(&csvBuf, items); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	var pageBuf bytes.Buffer
	page := &mylist.Page{
		Profile: deps.Profile,
		Items:   items,
		BaseURL: c.BaseURL,
		Order:   order,
	}
	if err := deps.Renderer.Render(&pageBuf, page); err != nil {
		return fmt.Errorf("failed to render viewer: %w", err)
	}

	store := deps.Files
	if err := store.Save(csvPath, csvBuf.Bytes()); err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Save(viewerPath, pageBuf.Bytes()); err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return err
	}
	return nil
}

func countSeen(items []*mylist.Item) int {
	var n int
	for _, item := range items {
		if item.Seen {
			n++
		}
	}
	return n
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
