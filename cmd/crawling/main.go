package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tnwlsdldkdlel/crawling"
	"github.com/tnwlsdldkdlel/crawling/extract"
	"github.com/tnwlsdldkdlel/crawling/naver"
	"github.com/tnwlsdldkdlel/crawling/rod"
	crawlslog "github.com/tnwlsdldkdlel/crawling/slog"
	"github.com/tnwlsdldkdlel/crawling/sqlite"
)

// requestsPerSecond is the per-domain politeness limit for page loads.
const requestsPerSecond = 1.0

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService crawling.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crawling"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'crawling --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database unless persistence was skipped for this invocation.
	skipDB := (cmd == "extract" && cli.Extract.NoDB) || (cmd == "search" && cli.Search.NoDB)
	if !skipDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CRAWLING_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ExtractionService = sqlite.NewExtractionService(m.DB)
		if cli.Verbose {
			m.ExtractionService = crawlslog.NewLoggingExtractionService(m.ExtractionService, deps.Logger)
		}
		deps.DB = m.DB
		deps.Extractions = m.ExtractionService
	}

	// Wire the browser and runner only for commands that navigate.
	if cmd == "extract" || cmd == "search" {
		flags := cli.Extract.extractFlags
		if cmd == "search" {
			flags = cli.Search.extractFlags
		}

		loader, err := rod.NewLoader(rod.WithHeadless(flags.Headless))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer loader.Close()

		deps.Loader = loader
		if cli.Verbose {
			deps.Loader = rod.NewLoggingLoader(loader, deps.Logger)
		}

		deps.Runner = &extract.Runner{
			Loader: deps.Loader,
			Pipeline: &extract.Pipeline{
				Classifier: naver.Classifier{},
				Parser:     naver.Parser{},
				Fallback:   flags.Fallback,
			},
			Extractions: deps.Extractions,
			Limiter:     extract.NewDomainLimiter(requestsPerSecond),
			Concurrency: flags.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CRAWLING_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "crawling.db"
	}
	dir := filepath.Join(home, ".crawling")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "crawling.db")
}
