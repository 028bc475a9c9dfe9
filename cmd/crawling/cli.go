package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tnwlsdldkdlel/crawling"
	"github.com/tnwlsdldkdlel/crawling/extract"
	"github.com/tnwlsdldkdlel/crawling/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Extractions crawling.ExtractionService
	Loader      crawling.DocumentLoader
	Runner      *extract.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract keyword sentences from blog post URLs"`
	Search  SearchCmd  `cmd:"" help:"Discover posts via Naver blog search and extract from them"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Delete  DeleteCmd  `cmd:"" help:"Delete the extraction for a URL"`
	SetupDB SetupDBCmd `cmd:"" name:"setup-db" help:"Initialize the database schema and exit"`

	DB      string `help:"Database path" env:"CRAWLING_DB"`
	Verbose bool   `help:"Enable detailed logging"`
}

// extractFlags are the extraction options shared by extract and search.
type extractFlags struct {
	Keyword     string   `short:"k" help:"Topic keyword stored with each result"`
	Term        []string `short:"t" help:"Required term (repeatable)" default:"yarn,실,바늘"`
	Fallback    bool     `help:"Select the best partial match when no sentence has every term"`
	NoDB        bool     `name:"no-db" help:"Skip persisting results"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Headless    bool     `default:"true" negatable:"" help:"Run the browser headless"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs []string `arg:"" help:"Blog post URLs to extract from"`
	extractFlags
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search keyword"`
	Pages int    `short:"p" default:"3" help:"Number of search result pages to scan"`
	extractFlags
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL     string `help:"Show only the extraction for this URL"`
	Keyword string `help:"Show only extractions for this keyword"`
	Full    bool   `help:"Show full structured payloads"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"Source URL of the extraction to delete"`
}

// SetupDBCmd is the "setup-db" subcommand.
type SetupDBCmd struct{}
