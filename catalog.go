package fluentdoc

import (
	"sort"
	"strings"
)

// KnownSection maps a short memorable key to a fixed document path and a
// display name. The display name overrides the path-derived heuristic title.
type KnownSection struct {
	Path       string
	Name       string
	Breadcrumb []string
}

// Catalog is the immutable site configuration a Fetcher is constructed with:
// the landing and secured-area URLs, the guide TOC path templates, and the
// table of well-known section keys. Catalogs are validated up front so a
// broken table fails at construction, not in the middle of a navigation.
type Catalog struct {
	// BaseURL is the scheme and host of the help site.
	BaseURL string

	// LandingURL is the page visited once to establish the session.
	LandingURL string

	// SecuredPrefix is prepended to every relative document path. The
	// double slash is what the site actually serves; do not normalize it.
	SecuredPrefix string

	// ConsentSelector locates the cookie-consent accept button. Dismissal
	// is best-effort; absence of the prompt is not an error.
	ConsentSelector string

	// ContentMarker must appear in an anchor's resolved href for it to
	// count as a guide content link during TOC extraction.
	ContentMarker string

	// NotFoundRoute is a URL fragment the viewer redirects to for missing
	// pages.
	NotFoundRoute string

	// Version is the documentation version, e.g. "v252".
	Version string

	// Guides maps a guide name to its TOC page path, relative to the
	// version directory (e.g. "flu_th/flu_th.html").
	Guides map[string]string

	// Keys maps short keys to known sections.
	Keys map[string]KnownSection
}

// Validate returns an error describing the first problem found, or nil.
func (c *Catalog) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "catalog base URL required")
	}
	if c.LandingURL == "" {
		return Errorf(EINVALID, "catalog landing URL required")
	}
	if !strings.HasPrefix(c.SecuredPrefix, c.BaseURL) {
		return Errorf(EINVALID, "catalog secured prefix must extend the base URL")
	}
	if c.Version == "" {
		return Errorf(EINVALID, "catalog version required")
	}
	if len(c.Guides) == 0 {
		return Errorf(EINVALID, "catalog requires at least one guide")
	}
	for guide, path := range c.Guides {
		if path == "" {
			return Errorf(EINVALID, "guide %q has an empty TOC path", guide)
		}
	}
	for key, section := range c.Keys {
		if section.Path == "" {
			return Errorf(EINVALID, "key %q has an empty document path", key)
		}
		if section.Name == "" {
			return Errorf(EINVALID, "key %q has an empty display name", key)
		}
	}
	return nil
}

// TocPath returns the relative path of a guide's TOC page for the catalog's
// version. The second return value is false for unrecognized guides.
func (c *Catalog) TocPath(guide string) (string, bool) {
	rel, ok := c.Guides[guide]
	if !ok {
		return "", false
	}
	return "corp/" + c.Version + "/en/" + rel, true
}

// GuideNames returns the configured guide names, sorted.
func (c *Catalog) GuideNames() []string {
	return sortedKeys(c.Guides)
}

// KeyNames returns the configured section keys, sorted.
func (c *Catalog) KeyNames() []string {
	return sortedKeys(c.Keys)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
