// Package fetch implements the documentation retrieval engine: lazy session
// establishment against the frame-embedded help viewer, content navigation
// and extraction, TOC index construction, and free-text section resolution.
package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/fluentdoc"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements fluentdoc.Retriever at compile time.
var _ fluentdoc.Retriever = (*Fetcher)(nil)

// Default timing bounds. The viewer gives no reliable network-idle signal,
// so navigation waits are bounded sleeps with an early-exit readiness poll.
const (
	DefaultLandingTimeout = 90 * time.Second
	DefaultNavTimeout     = 30 * time.Second
	DefaultSettle         = 3 * time.Second
	DefaultNavInterval    = time.Second

	consentTimeout = 3 * time.Second
	readyPollStep  = 250 * time.Millisecond
)

// printMarker precedes the real content on most pages; everything up to and
// including it is TOC/navigation chrome duplicated on every page.
const printMarker = "PRINT PAGE"

// notFoundPhrase is the viewer's in-body signal for a missing page.
const notFoundPhrase = "page cannot be found"

// Fetcher retrieves documentation sections through an injected browser
// session. A Fetcher owns its Session exclusively and performs all browser
// work sequentially; it is not safe for concurrent use.
type Fetcher struct {
	session  fluentdoc.Session
	catalog  *fluentdoc.Catalog
	tocLinks fluentdoc.TocLinkExtractor

	store     fluentdoc.TocStore // optional durable TOC cache
	extractor fluentdoc.Extractor
	converter fluentdoc.Converter

	limiter        *rate.Limiter
	landingTimeout time.Duration
	navTimeout     time.Duration
	settle         time.Duration

	sessionEstablished bool

	mu       sync.Mutex
	tocCache map[string][]fluentdoc.TocEntry
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTocStore sets the durable TOC cache consulted before a live build.
func WithTocStore(store fluentdoc.TocStore) Option {
	return func(f *Fetcher) { f.store = store }
}

// WithMarkdown enables markdown content mode: instead of the frame's visible
// text, content is produced by extracting the main content from the frame's
// HTML and converting it to markdown. Falls back to text mode per page when
// extraction fails.
func WithMarkdown(extractor fluentdoc.Extractor, converter fluentdoc.Converter) Option {
	return func(f *Fetcher) {
		f.extractor = extractor
		f.converter = converter
	}
}

// WithNavTimeout bounds each frame navigation.
func WithNavTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.navTimeout = d }
}

// WithLandingTimeout bounds the one-time landing navigation.
func WithLandingTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.landingTimeout = d }
}

// WithSettle sets the worst-case wait after a navigation for scripts and
// layout to finish.
func WithSettle(d time.Duration) Option {
	return func(f *Fetcher) { f.settle = d }
}

// WithNavInterval sets the minimum spacing between navigations.
func WithNavInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.limiter = rate.NewLimiter(rate.Every(d), 1)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a Fetcher over an established browsing capability. The
// catalog is validated here; a malformed table is a construction error, not
// something to discover mid-navigation.
func NewFetcher(session fluentdoc.Session, catalog *fluentdoc.Catalog, tocLinks fluentdoc.TocLinkExtractor, opts ...Option) (*Fetcher, error) {
	if session == nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "session required")
	}
	if catalog == nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "catalog required")
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if tocLinks == nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "toc link extractor required")
	}

	f := &Fetcher{
		session:        session,
		catalog:        catalog,
		tocLinks:       tocLinks,
		limiter:        rate.NewLimiter(rate.Every(DefaultNavInterval), 1),
		landingTimeout: DefaultLandingTimeout,
		navTimeout:     DefaultNavTimeout,
		settle:         DefaultSettle,
		tocCache:       make(map[string][]fluentdoc.TocEntry),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// establishSession visits the landing page once to authorize the browsing
// context. Subsequent calls are no-ops. Consent dismissal is best-effort;
// the prompt is frequently absent.
func (f *Fetcher) establishSession(ctx context.Context) error {
	if f.sessionEstablished {
		return nil
	}

	navCtx, cancel := context.WithTimeout(ctx, f.landingTimeout)
	defer cancel()
	if err := f.session.Navigate(navCtx, f.catalog.LandingURL); err != nil {
		return fluentdoc.Errorf(fluentdoc.ESESSION, "landing navigation failed: %v", err)
	}

	if f.catalog.ConsentSelector != "" {
		clickCtx, cancelClick := context.WithTimeout(ctx, consentTimeout)
		_ = f.session.Click(clickCtx, f.catalog.ConsentSelector)
		cancelClick()
	}

	// Give the host page time to register its embedded frame.
	f.sleep(ctx, f.settle)

	f.sessionEstablished = true
	return nil
}

// contentFrame returns the frame carrying document content. The host page
// registers its shell as frame 0 and the content frame as frame 1; fewer
// than two frames means the session has not produced a content-bearing page.
func (f *Fetcher) contentFrame(ctx context.Context) (fluentdoc.Frame, error) {
	frames, err := f.session.Frames(ctx)
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.ESESSION, "listing frames failed: %v", err)
	}
	if len(frames) < 2 {
		return nil, fluentdoc.Errorf(fluentdoc.ESESSION, "content frame not present (%d frames)", len(frames))
	}
	return frames[1], nil
}

// FetchByKey retrieves a section by its catalog key.
func (f *Fetcher) FetchByKey(ctx context.Context, key string) (*fluentdoc.DocContent, error) {
	section, ok := f.catalog.Keys[key]
	if !ok {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "unknown section key %q", key)
	}

	breadcrumb := section.Breadcrumb
	if len(breadcrumb) == 0 {
		breadcrumb = []string{section.Name}
	}
	return f.fetch(ctx, section.Path, section.Name, breadcrumb)
}

// FetchByPath retrieves a section by its relative document path, deriving a
// display title from the path.
func (f *Fetcher) FetchByPath(ctx context.Context, path string) (*fluentdoc.DocContent, error) {
	return f.fetch(ctx, path, "", nil)
}

// FetchByQuery resolves a free-text query against a guide's TOC index and
// retrieves the best match, using the TOC entry's real title rather than the
// path heuristic.
func (f *Fetcher) FetchByQuery(ctx context.Context, query, guide string) (*fluentdoc.DocContent, error) {
	entries, err := f.BuildIndex(ctx, guide)
	if err != nil {
		return nil, err
	}

	entry := fluentdoc.FindSection(query, entries)
	if entry == nil {
		return nil, fluentdoc.Errorf(fluentdoc.ENOMATCH, "no section matching %q in %s guide", query, guide)
	}

	// TOC hrefs are absolute; recover the navigable path.
	path := strings.TrimPrefix(entry.URL, f.catalog.SecuredPrefix)

	return f.fetch(ctx, path, entry.Title, []string{entry.Title})
}

// fetch drives the content frame to a document path and extracts its
// content. An empty title selects the path-derived heuristic.
func (f *Fetcher) fetch(ctx context.Context, path, title string, breadcrumb []string) (*fluentdoc.DocContent, error) {
	if err := f.establishSession(ctx); err != nil {
		return nil, err
	}
	frame, err := f.contentFrame(ctx)
	if err != nil {
		return nil, err
	}

	target := f.catalog.SecuredPrefix + path
	if err := f.navigateFrame(ctx, frame, target); err != nil {
		// Transport failures are misses, not fatal errors; the site is
		// an unreliable third-party surface.
		return nil, fluentdoc.Errorf(fluentdoc.ENOTFOUND, "navigation to %q failed: %v", path, err)
	}

	body, err := frame.InnerText(ctx, "body")
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.ENOTFOUND, "extracting text of %q failed: %v", path, err)
	}

	resolvedURL, err := frame.URL(ctx)
	if err != nil {
		resolvedURL = target
	}
	if isNotFound(body, resolvedURL, f.catalog.NotFoundRoute) {
		return nil, fluentdoc.Errorf(fluentdoc.ENOTFOUND, "page not found for %q", path)
	}

	content := TrimPrintChrome(body)
	if f.extractor != nil && f.converter != nil {
		if md, err := f.markdownContent(ctx, frame); err == nil && md != "" {
			content = md
		}
	}

	if title == "" {
		title = TitleFromPath(path)
	}
	if len(breadcrumb) == 0 {
		breadcrumb = []string{title}
	}

	return &fluentdoc.DocContent{
		Title:      title,
		URL:        resolvedURL,
		Content:    content,
		Breadcrumb: breadcrumb,
	}, nil
}

// markdownContent produces markdown from the frame's HTML via the configured
// extract/convert pipeline.
func (f *Fetcher) markdownContent(ctx context.Context, frame fluentdoc.Frame) (string, error) {
	html, err := frame.HTML(ctx)
	if err != nil {
		return "", err
	}
	result, err := f.extractor.Extract(html)
	if err != nil {
		return "", err
	}
	return f.converter.Convert(result.ContentHTML)
}

// navigateFrame performs one rate-limited, bounded frame navigation followed
// by the settle wait.
func (f *Fetcher) navigateFrame(ctx context.Context, frame fluentdoc.Frame, url string) error {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	navCtx, cancel := context.WithTimeout(ctx, f.navTimeout)
	defer cancel()
	if err := frame.Navigate(navCtx, url); err != nil {
		return err
	}

	f.waitReady(ctx, frame)
	return nil
}

// waitReady polls the frame for document readiness, returning early when the
// document reports complete but never waiting longer than the settle bound.
func (f *Fetcher) waitReady(ctx context.Context, frame fluentdoc.Frame) {
	deadline := time.Now().Add(f.settle)
	for time.Now().Before(deadline) {
		state, err := frame.Eval(ctx, "document.readyState")
		if err == nil && strings.Contains(state, "complete") {
			return
		}
		remaining := time.Until(deadline)
		if remaining < readyPollStep {
			f.sleep(ctx, remaining)
			return
		}
		f.sleep(ctx, readyPollStep)
	}
}

func (f *Fetcher) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// isNotFound reports whether an extracted body or resolved URL signals a
// missing page.
func isNotFound(body, resolvedURL, notFoundRoute string) bool {
	if strings.Contains(strings.ToLower(body), notFoundPhrase) {
		return true
	}
	return notFoundRoute != "" && strings.Contains(resolvedURL, notFoundRoute)
}

// TrimPrintChrome discards everything up to and including the print-trigger
// marker, which precedes the real content on most pages.
func TrimPrintChrome(body string) string {
	if idx := strings.Index(body, printMarker); idx >= 0 {
		return strings.TrimSpace(body[idx+len(printMarker):])
	}
	return body
}

// TitleFromPath derives a display title from a document path: final segment,
// extension stripped, underscores to spaces, title-cased. A heuristic only;
// callers with a known display name override it.
func TitleFromPath(path string) string {
	segment := path
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.LastIndex(segment, "."); idx >= 0 {
		segment = segment[:idx]
	}
	words := strings.Split(strings.ReplaceAll(segment, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
