package fluentdoc

import (
	"context"
	"regexp"
)

// TocEntry is one entry of a guide's table of contents. Entries are plain
// values; the same href may appear more than once in a TOC, and slice order
// is document order on the TOC page (the only stable tie-break signal the
// matcher has).
type TocEntry struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	SectionNumber string `json:"sectionNumber"`
}

// TocLink is the raw anchor record a TOC page yields before parsing: the
// anchor's display text and its absolute href. This is also the durable
// cache format, stable and loadable without a live session.
type TocLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// TocStore persists raw TOC links per (guide, version). A single writer per
// key is assumed; concurrent readers are safe.
type TocStore interface {
	// Load returns the cached links for a guide and version.
	// Returns ENOTFOUND if no cache exists for the key.
	Load(ctx context.Context, guide, version string) ([]TocLink, error)

	// Save writes the links for a guide and version, replacing any
	// previous snapshot.
	Save(ctx context.Context, guide, version string, links []TocLink) error
}

// Section titles carry a leading dotted chapter number, e.g.
// "4.4.3. SST k-ω Model".
var sectionNumberRe = regexp.MustCompile(`^(\d+(?:\.\d+)*\.?)\s+(.+)$`)

// ParseTocEntry splits an anchor's display text into section number and
// title. Text without a numeric prefix yields an empty section number and
// the whole text as title.
func ParseTocEntry(link TocLink) TocEntry {
	entry := TocEntry{Title: link.Text, URL: link.Href}
	if m := sectionNumberRe.FindStringSubmatch(link.Text); m != nil {
		entry.SectionNumber = trimTrailingDot(m[1])
		entry.Title = m[2]
	}
	return entry
}

// ParseTocEntries converts raw links to entries, preserving order.
func ParseTocEntries(links []TocLink) []TocEntry {
	if len(links) == 0 {
		return nil
	}
	entries := make([]TocEntry, 0, len(links))
	for _, link := range links {
		entries = append(entries, ParseTocEntry(link))
	}
	return entries
}

func trimTrailingDot(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}
