package mock

import "github.com/fwojciec/fluentdoc"

var _ fluentdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fluentdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*fluentdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*fluentdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ fluentdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of fluentdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ fluentdoc.TocLinkExtractor = (*TocLinkExtractor)(nil)

// TocLinkExtractor is a mock implementation of fluentdoc.TocLinkExtractor.
type TocLinkExtractor struct {
	ExtractTocLinksFn func(html, baseURL, marker string) ([]fluentdoc.TocLink, error)
}

func (e *TocLinkExtractor) ExtractTocLinks(html, baseURL, marker string) ([]fluentdoc.TocLink, error) {
	return e.ExtractTocLinksFn(html, baseURL, marker)
}
