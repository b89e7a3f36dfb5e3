package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/fluentdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Catalog   *fluentdoc.Catalog
	Retriever fluentdoc.Retriever
	Archive   fluentdoc.ArchiveService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Version  string `help:"Documentation version (defaults to ${default_version})"`
	Headless bool   `default:"true" negatable:"" help:"Run the browser headless"`
	Markdown bool   `help:"Convert section content to markdown instead of plain text"`
	Verbose  bool   `short:"v" help:"Log navigation and retrieval activity"`
	DB       string `help:"Archive database path (overrides FLUENTDOC_DB)"`
	CacheDir string `help:"TOC cache directory (overrides FLUENTDOC_CACHE_DIR)"`

	Sections SectionsCmd `cmd:"" help:"List the well-known section keys"`
	Get      GetCmd      `cmd:"" help:"Fetch a section by its well-known key"`
	URL      URLCmd      `cmd:"" help:"Fetch a section by its document path"`
	Find     FindCmd     `cmd:"" help:"Find and fetch the section best matching a query"`
	Toc      TocCmd      `cmd:"" help:"Show a guide's table of contents"`
	Saved    SavedCmd    `cmd:"" help:"Manage the local archive of fetched sections"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Key    string `arg:"" help:"Well-known section key (see 'sections')"`
	Output string `short:"o" help:"Write content to a file instead of stdout"`
	Save   bool   `short:"s" help:"Archive the fetched section locally"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	Path   string `arg:"" help:"Document path relative to the secured area"`
	Output string `short:"o" help:"Write content to a file instead of stdout"`
	Save   bool   `short:"s" help:"Archive the fetched section locally"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Query  string `arg:"" help:"Free-text query, e.g. \"natural convection\""`
	Guide  string `short:"g" default:"theory" help:"Guide to search (theory, user, tui)"`
	Output string `short:"o" help:"Write content to a file instead of stdout"`
	Save   bool   `short:"s" help:"Archive the fetched section locally"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Guide  string `short:"g" default:"theory" help:"Guide to index (theory, user, tui)"`
	Filter string `short:"F" help:"Show only entries whose title contains this text"`
	All    bool   `help:"Show unnumbered entries as well"`
}

// SavedCmd groups the archive subcommands.
type SavedCmd struct {
	List   SavedListCmd   `cmd:"" default:"1" help:"List archived sections"`
	Show   SavedShowCmd   `cmd:"" help:"Print an archived section"`
	Delete SavedDeleteCmd `cmd:"" help:"Delete an archived section"`
}

// SavedListCmd is the "saved list" subcommand.
type SavedListCmd struct {
	Guide string `short:"g" help:"Show only sections from this guide"`
	Key   string `short:"k" help:"Show only sections fetched by this key"`
}

// SavedShowCmd is the "saved show" subcommand.
type SavedShowCmd struct {
	ID string `arg:"" help:"Archived section ID (see 'saved list')"`
}

// SavedDeleteCmd is the "saved delete" subcommand.
type SavedDeleteCmd struct {
	ID string `arg:"" help:"Archived section ID (see 'saved list')"`
}

// emitDocument writes a fetched section to the output path, or renders it to
// stdout with its breadcrumb and source URL.
func emitDocument(deps *Dependencies, doc *fluentdoc.DocContent, output string) error {
	if output != "" {
		if err := os.WriteFile(output, []byte(doc.Content), 0644); err != nil {
			return fluentdoc.Errorf(fluentdoc.EINTERNAL, "writing %q: %v", output, err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %q to %s\n", doc.Title, output)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "# %s\n", doc.Title)
	if len(doc.Breadcrumb) > 0 {
		fmt.Fprintf(deps.Stdout, "Location: %s\n", strings.Join(doc.Breadcrumb, " > "))
	}
	fmt.Fprintf(deps.Stdout, "Source: %s\n\n", doc.URL)
	fmt.Fprintln(deps.Stdout, doc.Content)
	return nil
}

// guideOf reports which guide a document path belongs to, or "" when the
// path matches no configured guide directory.
func (d *Dependencies) guideOf(docPath string) string {
	for guide, rel := range d.Catalog.Guides {
		dir := rel
		if i := strings.Index(rel, "/"); i >= 0 {
			dir = rel[:i]
		}
		if strings.Contains(docPath, "/"+dir+"/") {
			return guide
		}
	}
	return ""
}

// archiveDocument saves a fetched section to the local archive.
func archiveDocument(deps *Dependencies, doc *fluentdoc.DocContent, guide, key, path string) error {
	if deps.Archive == nil {
		return fluentdoc.Errorf(fluentdoc.EINTERNAL, "archive unavailable")
	}
	saved := &fluentdoc.SavedDocument{
		Guide:     guide,
		Key:       key,
		DocPath:   path,
		SourceURL: doc.URL,
		Title:     doc.Title,
		Content:   doc.Content,
	}
	if err := deps.Archive.SaveDocument(deps.Ctx, saved); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved as %s\n", saved.ID)
	return nil
}
