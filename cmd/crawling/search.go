package main

import (
	"fmt"

	"github.com/tnwlsdldkdlel/crawling/naver"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	search := &naver.Search{
		Loader:  deps.Loader,
		Limiter: deps.Runner.Limiter,
	}

	urls, err := search.Discover(deps.Ctx, c.Query, c.Pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: discovering posts: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d post(s) for %q\n", len(urls), c.Query)
	if len(urls) == 0 {
		return nil
	}

	// The search query doubles as the stored topic keyword unless one was
	// given explicitly.
	flags := c.extractFlags
	if flags.Keyword == "" {
		flags.Keyword = c.Query
	}

	return runExtraction(deps, urls, flags)
}
