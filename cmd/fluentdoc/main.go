package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fluentdoc"
	"github.com/fwojciec/fluentdoc/fetch"
	fluentfs "github.com/fwojciec/fluentdoc/fs"
	"github.com/fwojciec/fluentdoc/goquery"
	"github.com/fwojciec/fluentdoc/htmltomarkdown"
	"github.com/fwojciec/fluentdoc/rod"
	fluentslog "github.com/fwojciec/fluentdoc/slog"
	"github.com/fwojciec/fluentdoc/sqlite"
	"github.com/fwojciec/fluentdoc/trafilatura"
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
	// Database path for the local archive. Set before calling Run().
	DBPath string

	// Directory for durable TOC caches. Set before calling Run().
	CacheDir string

	// SQLite database used by the archive service.
	DB *sqlite.DB

	// Browser session, open only while a retrieval command runs.
	Session fluentdoc.Session
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CacheDir: defaultCacheDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Session != nil {
		_ = m.Session.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// browserCommands names the subcommands that drive a live browser session.
var browserCommands = map[string]bool{
	"get":  true,
	"url":  true,
	"find": true,
	"toc":  true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fluentdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_version": fluentdoc.DefaultVersion},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fluentdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if cli.CacheDir != "" {
		m.CacheDir = cli.CacheDir
	}

	catalog := fluentdoc.DefaultCatalog(cli.Version)
	deps.Catalog = catalog

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FLUENTDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Archive = sqlite.NewArchiveService(m.DB)

	// Wire the browser-backed retriever only for commands that fetch
	if browserCommands[cmd] {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

		session, err := rod.NewSession(rod.WithHeadless(cli.Headless))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Session = session
		if cli.Verbose {
			m.Session = rod.NewLoggingSession(session, logger)
		}

		opts := []fetch.Option{
			fetch.WithTocStore(fluentfs.NewTocStore(m.CacheDir)),
		}
		if cli.Markdown {
			opts = append(opts, fetch.WithMarkdown(trafilatura.NewExtractor(), htmltomarkdown.NewConverter()))
		}

		fetcher, err := fetch.NewFetcher(m.Session, catalog, goquery.NewTocLinkExtractor(), opts...)
		if err != nil {
			return fmt.Errorf("failed to create fetcher: %w", err)
		}

		deps.Retriever = fetcher
		if cli.Verbose {
			deps.Retriever = fluentslog.NewLoggingRetriever(fetcher, logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FLUENTDOC_DB"); path != "" {
		return path
	}
	dir := configDir()
	return filepath.Join(dir, "fluentdoc.db")
}

func defaultCacheDir() string {
	if dir := os.Getenv("FLUENTDOC_CACHE_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(configDir(), "cache")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".fluentdoc")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
