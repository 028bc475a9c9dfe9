package main

import (
	"encoding/json"
	"fmt"

	"github.com/tnwlsdldkdlel/crawling"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := crawling.ExtractionFilter{}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawling.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'crawling extract' to create some.")
		return nil
	}

	for _, e := range extractions {
		status := "FAILED"
		if e.Success {
			status = "OK"
		}
		fmt.Fprintf(deps.Stdout, "%-6s %s  %s\n", status, e.UpdatedAt.Format("2006-01-02 15:04"), e.SourceURL)

		if !c.Full {
			continue
		}
		if e.Sentence != nil {
			payload, err := json.MarshalIndent(e.Sentence, "       ", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(deps.Stdout, "       %s\n", payload)
		}
		if e.ErrorMessage != "" {
			fmt.Fprintf(deps.Stdout, "       error: %s\n", e.ErrorMessage)
		}
	}

	return nil
}
