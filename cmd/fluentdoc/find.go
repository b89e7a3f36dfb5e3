package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fluentdoc"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	if _, ok := deps.Catalog.Guides[c.Guide]; !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown guide %q. Available guides: %s.\n",
			c.Guide, strings.Join(deps.Catalog.GuideNames(), ", "))
		return fluentdoc.Errorf(fluentdoc.EINVALID, "unknown guide %q", c.Guide)
	}

	doc, err := deps.Retriever.FetchByQuery(deps.Ctx, c.Query, c.Guide)
	if err != nil {
		if fluentdoc.ErrorCode(err) == fluentdoc.ENOMATCH {
			fmt.Fprintf(deps.Stderr, "No section matching %q in the %s guide. Try 'fluentdoc toc --guide %s' to browse titles.\n",
				c.Query, c.Guide, c.Guide)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		}
		return err
	}

	if err := emitDocument(deps, doc, c.Output); err != nil {
		return err
	}

	if c.Save {
		path := strings.TrimPrefix(doc.URL, deps.Catalog.SecuredPrefix)
		return archiveDocument(deps, doc, c.Guide, "", path)
	}

	return nil
}
