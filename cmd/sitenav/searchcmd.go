package main

import (
	"fmt"

	"github.com/sitenav/sitenav"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Search.Search(deps.Ctx, sitenav.SearchRequest{
		Query:  c.Query,
		Origin: c.Origin,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitenav.ErrorMessage(err))
		return err
	}

	if resp.Message != "" {
		fmt.Fprintln(deps.Stdout, resp.Message)
	}
	for i, r := range resp.Results {
		fmt.Fprintf(deps.Stdout, "%2d. [%d] %s\n    %s\n", i+1, r.Score, r.Title, r.PageURL)
	}

	return nil
}
