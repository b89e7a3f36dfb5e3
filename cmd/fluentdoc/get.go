package main

import (
	"fmt"

	"github.com/fwojciec/fluentdoc"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	section, ok := deps.Catalog.Keys[c.Key]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown key %q. Use 'fluentdoc sections' to see available keys.\n", c.Key)
		return fluentdoc.Errorf(fluentdoc.EINVALID, "unknown section key %q", c.Key)
	}

	doc, err := deps.Retriever.FetchByKey(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		return err
	}

	if err := emitDocument(deps, doc, c.Output); err != nil {
		return err
	}

	if c.Save {
		return archiveDocument(deps, doc, deps.guideOf(section.Path), c.Key, section.Path)
	}

	return nil
}
