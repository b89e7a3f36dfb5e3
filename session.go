package fluentdoc

import "context"

// Session is one authorized browsing context against the help site. The real
// document body is delivered inside an embedded sub-frame of the top-level
// page, so a Session exposes its frame list rather than page content.
//
// A Session is exclusively owned by one Fetcher for its entire lifetime and
// is not safe for concurrent use. Close must be called on every exit path;
// leaked sessions leak OS-level browser processes.
type Session interface {
	// Navigate drives the top-level page to url and waits for the DOM to
	// load. The context controls timeout and cancellation.
	Navigate(ctx context.Context, url string) error

	// Click clicks the first element matching the CSS selector. Returns
	// an error if no such element appears before the context expires.
	Click(ctx context.Context, selector string) error

	// Frames lists the active frames in registration order. Index 0 is
	// the host shell; the content frame, when present, is index 1.
	Frames(ctx context.Context) ([]Frame, error)

	// Close releases browser resources. Safe to call more than once.
	Close() error
}

// Frame is one frame of a Session's page. Frame handles may go stale after
// top-level navigation; callers should re-list frames per operation.
type Frame interface {
	// Navigate drives this frame to url and waits for the DOM to load.
	Navigate(ctx context.Context, url string) error

	// InnerText returns the visible text of the first element matching
	// the CSS selector.
	InnerText(ctx context.Context, selector string) (string, error)

	// HTML returns the frame's current HTML.
	HTML(ctx context.Context) (string, error)

	// Eval evaluates a JavaScript expression in the frame and returns
	// the JSON-encoded result.
	Eval(ctx context.Context, js string) (string, error)

	// URL returns the frame's resolved URL.
	URL(ctx context.Context) (string, error)
}

// Retriever is the facade contract the presentation layer consumes. Every
// retrieval normalizes to a DocContent or a coded error; see the error codes
// in error.go for the failure taxonomy.
type Retriever interface {
	// FetchByKey retrieves a section by a key from the catalog's key
	// table. Returns EINVALID for unknown keys without touching the
	// network.
	FetchByKey(ctx context.Context, key string) (*DocContent, error)

	// FetchByPath retrieves a section by its relative document path. The
	// title is derived heuristically from the path.
	FetchByPath(ctx context.Context, path string) (*DocContent, error)

	// FetchByQuery resolves a free-text query against a guide's TOC
	// index and retrieves the best-matching section.
	FetchByQuery(ctx context.Context, query, guide string) (*DocContent, error)

	// BuildIndex returns the TOC index for a guide, building it if
	// needed. Returns EINVALID for unknown guides, ENOINDEX when the
	// build yields nothing.
	BuildIndex(ctx context.Context, guide string) ([]TocEntry, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// TocLinkExtractor collects guide content anchors from a TOC page's HTML.
type TocLinkExtractor interface {
	// ExtractTocLinks returns every anchor whose href, resolved against
	// baseURL, contains marker and does not point at a PDF. Order is
	// document order.
	ExtractTocLinks(html, baseURL, marker string) ([]TocLink, error)
}
