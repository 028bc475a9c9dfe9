package main

import (
	"fmt"

	"github.com/tnwlsdldkdlel/crawling"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.URL); err != nil {
		if crawling.ErrorCode(err) == crawling.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no extraction stored for %q. Use 'crawling list' to see stored URLs.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawling.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction for %q\n", c.URL)
	return nil
}
