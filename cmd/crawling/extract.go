package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tnwlsdldkdlel/crawling"
	"github.com/tnwlsdldkdlel/crawling/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	return runExtraction(deps, c.URLs, c.extractFlags)
}

// runExtraction feeds URLs through the runner and prints per-URL outcomes.
// Shared by the extract and search commands.
func runExtraction(deps *Dependencies, urls []string, flags extractFlags) error {
	terms := crawling.KeywordSet(flags.Term)
	if err := terms.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawling.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to extract from.")
		return nil
	}

	logger := deps.Logger.With("run", uuid.New().String())
	logger.Debug("starting extraction", "urls", len(urls), "terms", terms)

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting from %d URL(s)\n", event.Total)
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
			fmt.Fprintf(deps.Stdout, "      %s\n", event.Extraction.Sentence.Sentence)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n", event.Completed, event.Total, event.URL, event.Extraction.ErrorMessage)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, urls, terms, flags.Keyword, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d matched, %d failed", result.Succeeded, result.Failed)
	if deps.Extractions != nil {
		fmt.Fprintf(deps.Stdout, ", %d saved", result.Saved)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
