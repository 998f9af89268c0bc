// Command mylist converts a saved My List page into a CSV file and an offline viewer.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/mylist"
	"github.com/fwojciec/mylist/bloom"
	"github.com/fwojciec/mylist/browser"
	"github.com/fwojciec/mylist/collate"
	"github.com/fwojciec/mylist/csv"
	"github.com/fwojciec/mylist/fs"
	"github.com/fwojciec/mylist/goquery"
	"github.com/fwojciec/mylist/htmltemplate"
	listslog "github.com/fwojciec/mylist/slog"
	"github.com/fwojciec/mylist/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files read for flag defaults. Missing files
	// are skipped.
	ConfigPaths []string

	// SQLite database, opened when a database path is configured.
	DB *sqlite.DB

	// Opener launches the viewer. Replaced in end-to-end tests.
	Opener mylist.Opener

	// Optional replacements for the services built in Run. Nil fields use
	// the default implementation for the resolved profile.
	Reader   mylist.RecordReader
	Writer   mylist.RecordWriter
	Sorter   mylist.Sorter
	Deduper  mylist.Deduplicator
	Renderer mylist.PageRenderer
	Files    mylist.FileStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{defaultConfigPath()},
		Opener:      browser.NewOpener(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mylist"),
		kong.Description("Convert a saved Netflix My List page into a CSV file and an offline viewer."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Usage errors are reported before any file is touched.
	if !cli.History && cli.HTML == "" && cli.CSVIn == "" {
		_ = kongCtx.PrintUsage(false)
		return fmt.Errorf("no input specified: pass a saved HTML page or --csv-in")
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Opener: m.Opener,
	}

	if cli.DB != "" {
		if err := os.MkdirAll(filepath.Dir(cli.DB), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MYLIST_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Seen = listslog.NewLoggingSeenStore(sqlite.NewSeenStore(m.DB), logger)
		deps.Snapshots = listslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), logger)
	}

	if cli.History {
		return cli.RunHistory(deps)
	}

	html, profile, err := cli.resolveInput(logger)
	if err != nil {
		return err
	}
	m.attach(deps, html, profile)
	return cli.Run(deps)
}

// attach fills deps with the conversion services for profile.
func (m *Main) attach(deps *Dependencies, html string, profile *mylist.Profile) {
	deps.HTML = html
	deps.Profile = profile
	deps.Extractor = listslog.NewLoggingExtractor(goquery.NewExtractor(profile), deps.Logger)

	deps.Reader = m.Reader
	if deps.Reader == nil {
		deps.Reader = csv.NewReader(profile.Schema)
	}
	deps.Writer = m.Writer
	if deps.Writer == nil {
		deps.Writer = csv.NewWriter(profile.Schema, profile.ByteOrderMark)
	}
	deps.Sorter = m.Sorter
	if deps.Sorter == nil {
		deps.Sorter = collate.NewSorter(profile.Locale)
	}
	deps.Deduper = m.Deduper
	if deps.Deduper == nil {
		deps.Deduper = bloom.NewDeduplicator()
	}
	deps.Renderer = m.Renderer
	if deps.Renderer == nil {
		deps.Renderer = htmltemplate.NewRenderer()
	}
	deps.Files = m.Files
	if deps.Files == nil {
		deps.Files = fs.NewFileStore()
	}
}

func defaultConfigPath() string {
	if path := os.Getenv("MYLIST_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".mylist", "config.yaml")
}

// newLogger returns a slog logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "mylist",
	})
	return slog.New(handler)
}
