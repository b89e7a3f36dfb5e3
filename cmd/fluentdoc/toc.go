package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fluentdoc"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	if _, ok := deps.Catalog.Guides[c.Guide]; !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown guide %q. Available guides: %s.\n",
			c.Guide, strings.Join(deps.Catalog.GuideNames(), ", "))
		return fluentdoc.Errorf(fluentdoc.EINVALID, "unknown guide %q", c.Guide)
	}

	entries, err := deps.Retriever.BuildIndex(deps.Ctx, c.Guide)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		return err
	}

	filter := strings.ToLower(c.Filter)
	shown := 0
	for _, entry := range entries {
		if !c.All && entry.SectionNumber == "" {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(entry.Title), filter) {
			continue
		}
		if entry.SectionNumber != "" {
			fmt.Fprintf(deps.Stdout, "%-12s %s\n", entry.SectionNumber, entry.Title)
		} else {
			fmt.Fprintf(deps.Stdout, "%-12s %s\n", "", entry.Title)
		}
		shown++
	}

	if shown == 0 {
		fmt.Fprintf(deps.Stdout, "No entries matched (index has %d entries).\n", len(entries))
	}

	return nil
}
