package main

import (
	"fmt"

	"github.com/fwojciec/fluentdoc"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	doc, err := deps.Retriever.FetchByPath(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		return err
	}

	if err := emitDocument(deps, doc, c.Output); err != nil {
		return err
	}

	if c.Save {
		return archiveDocument(deps, doc, deps.guideOf(c.Path), "", c.Path)
	}

	return nil
}
