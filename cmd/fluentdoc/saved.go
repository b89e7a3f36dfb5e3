package main

import (
	"fmt"

	"github.com/fwojciec/fluentdoc"
)

// Run executes the "saved list" command.
func (c *SavedListCmd) Run(deps *Dependencies) error {
	filter := fluentdoc.SavedDocumentFilter{}
	if c.Guide != "" {
		filter.Guide = &c.Guide
	}
	if c.Key != "" {
		filter.Key = &c.Key
	}

	docs, err := deps.Archive.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved sections. Use 'fluentdoc get <key> --save' to archive one.")
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", doc.ID, doc.FetchedAt.Format("2006-01-02"), doc.Title)
	}

	return nil
}

// Run executes the "saved show" command.
func (c *SavedShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Archive.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if fluentdoc.ErrorCode(err) == fluentdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no saved section with ID %q. Use 'fluentdoc saved list' to see available IDs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", doc.Title)
	fmt.Fprintf(deps.Stdout, "Source: %s\n", doc.SourceURL)
	fmt.Fprintf(deps.Stdout, "Fetched: %s\n\n", doc.FetchedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintln(deps.Stdout, doc.Content)

	return nil
}

// Run executes the "saved delete" command.
func (c *SavedDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Archive.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if fluentdoc.ErrorCode(err) == fluentdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no saved section with ID %q.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fluentdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.ID)
	return nil
}
