package main

import (
	"fmt"

	"github.com/sitenav/sitenav"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	sections, err := deps.Crawler.CrawlOrigin(deps.Ctx, c.Origin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitenav.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No indexable sections found.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%-4s  %-40s  %s\n", s.Type, s.Title, s.PageURL)
	}
	fmt.Fprintf(deps.Stdout, "\n%d sections indexed\n", len(sections))

	return nil
}
