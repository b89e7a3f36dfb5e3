// Package goquery provides HTML link extraction for TOC pages using CSS
// queries.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fluentdoc"
)

// Ensure TocLinkExtractor implements fluentdoc.TocLinkExtractor at compile time.
var _ fluentdoc.TocLinkExtractor = (*TocLinkExtractor)(nil)

// TocLinkExtractor collects guide content anchors from a TOC page.
type TocLinkExtractor struct{}

// NewTocLinkExtractor creates a new TocLinkExtractor.
func NewTocLinkExtractor() *TocLinkExtractor {
	return &TocLinkExtractor{}
}

// ExtractTocLinks parses the HTML and returns every anchor whose href,
// resolved against baseURL, contains marker and does not point at a PDF.
// Anchors without visible text are skipped. Order is document order, and
// duplicates are kept: the TOC's own ordering is the matcher's only
// tie-break signal, so the extractor must not editorialize.
func (e *TocLinkExtractor) ExtractTocLinks(html, baseURL, marker string) ([]fluentdoc.TocLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []fluentdoc.TocLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if href == "" || text == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !strings.Contains(resolved, marker) || strings.HasSuffix(resolved, ".pdf") {
			return
		}

		links = append(links, fluentdoc.TocLink{Text: text, Href: resolved})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
