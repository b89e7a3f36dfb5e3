package fetch

import (
	"context"

	"github.com/fwojciec/fluentdoc"
)

// BuildIndex returns the ordered TOC index for a guide at the catalog's
// version. Three tiers are tried in order, first success wins:
//
//  1. The in-process cache, valid for the life of this Fetcher.
//  2. The durable TOC store, loadable without a session.
//  3. A live build from the guide's TOC page.
//
// An index built once is treated as correct for the rest of the session;
// there is no re-validation against the live site.
func (f *Fetcher) BuildIndex(ctx context.Context, guide string) ([]fluentdoc.TocEntry, error) {
	tocPath, ok := f.catalog.TocPath(guide)
	if !ok {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "unknown guide %q (available: %v)", guide, f.catalog.GuideNames())
	}

	f.mu.Lock()
	if entries, ok := f.tocCache[guide]; ok {
		f.mu.Unlock()
		return entries, nil
	}
	f.mu.Unlock()

	if entries := f.loadStoredIndex(ctx, guide); len(entries) > 0 {
		f.cacheIndex(guide, entries)
		return entries, nil
	}

	entries, err := f.buildLiveIndex(ctx, guide, tocPath)
	if err != nil {
		return nil, err
	}
	f.cacheIndex(guide, entries)
	return entries, nil
}

// loadStoredIndex consults the durable cache. Any failure here just falls
// through to the live build.
func (f *Fetcher) loadStoredIndex(ctx context.Context, guide string) []fluentdoc.TocEntry {
	if f.store == nil {
		return nil
	}
	links, err := f.store.Load(ctx, guide, f.catalog.Version)
	if err != nil {
		return nil
	}
	return fluentdoc.ParseTocEntries(links)
}

// buildLiveIndex navigates the content frame to the guide's TOC page and
// collects its content anchors. The harvested raw links are written back to
// the durable store best-effort.
func (f *Fetcher) buildLiveIndex(ctx context.Context, guide, tocPath string) ([]fluentdoc.TocEntry, error) {
	if err := f.establishSession(ctx); err != nil {
		return nil, err
	}
	frame, err := f.contentFrame(ctx)
	if err != nil {
		return nil, err
	}

	target := f.catalog.SecuredPrefix + tocPath
	if err := f.navigateFrame(ctx, frame, target); err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.ENOINDEX, "navigation to %s guide TOC failed: %v", guide, err)
	}

	html, err := frame.HTML(ctx)
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.ENOINDEX, "reading %s guide TOC failed: %v", guide, err)
	}

	pageURL, err := frame.URL(ctx)
	if err != nil {
		pageURL = target
	}

	links, err := f.tocLinks.ExtractTocLinks(html, pageURL, f.catalog.ContentMarker)
	if err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.ENOINDEX, "extracting %s guide TOC links failed: %v", guide, err)
	}
	if len(links) == 0 {
		return nil, fluentdoc.Errorf(fluentdoc.ENOINDEX, "%s guide TOC page yielded no content links", guide)
	}

	if f.store != nil {
		_ = f.store.Save(ctx, guide, f.catalog.Version, links)
	}

	return fluentdoc.ParseTocEntries(links), nil
}

func (f *Fetcher) cacheIndex(guide string, entries []fluentdoc.TocEntry) {
	f.mu.Lock()
	f.tocCache[guide] = entries
	f.mu.Unlock()
}
