package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mylist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Seen      mylist.SeenStore
	Snapshots mylist.SnapshotService
	Opener    mylist.Opener

	// Resolved input. HTML is empty when reading from --csv-in.
	HTML    string
	Profile *mylist.Profile

	Extractor mylist.Extractor
	Reader    mylist.RecordReader
	Writer    mylist.RecordWriter
	Sorter    mylist.Sorter
	Deduper   mylist.Deduplicator
	Renderer  mylist.PageRenderer
	Files     mylist.FileStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	HTML  string `arg:"" optional:"" type:"path" help:"Saved My List page (HTML)"`
	CSVIn string `name:"csv-in" type:"path" help:"Read items from a CSV file instead of extracting them"`

	Out       string `default:"netflix_mylist.csv" type:"path" help:"CSV output path"`
	ViewerOut string `name:"viewer-out" type:"path" help:"Viewer output path (default depends on locale)"`
	BaseURL   string `name:"base-url" default:"https://www.netflix.com" help:"Base address used to resolve links"`

	Locale string `enum:"en,es,auto" default:"en" help:"Output profile: en, es, or auto to detect it from the page"`
	Sort   string `enum:"original,title-asc,title-desc,position-asc,position-desc" default:"original" help:"Order of written items"`
	Dedupe bool   `help:"Drop repeated items, keeping the first"`
	Open   bool   `help:"Open the viewer when done"`

	KeepUnidentified bool `name:"keep-unidentified" xor:"unidentified" help:"Keep items without a resolvable ID"`
	DropUnidentified bool `name:"drop-unidentified" xor:"unidentified" help:"Drop items without a resolvable ID"`

	DB      string `name:"db" env:"MYLIST_DB" type:"path" help:"SQLite database remembering seen items across runs"`
	History bool   `help:"List snapshots recorded in --db and exit"`

	Verbose bool            `short:"v" help:"Enable debug logging"`
	Config  kong.ConfigFlag `help:"YAML file supplying flag defaults" placeholder:"PATH"`
}
