// Package fs provides filesystem-backed storage implementations.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/fluentdoc"
)

// Ensure TocStore implements fluentdoc.TocStore at compile time.
var _ fluentdoc.TocStore = (*TocStore)(nil)

// TocStore persists raw TOC links as one JSON file per (guide, version)
// under a base directory. The file format is a plain array of
// {"text","href"} records, readable without a live session. Snapshots are
// never invalidated automatically; staleness is accepted.
type TocStore struct {
	baseDir string
}

// NewTocStore creates a TocStore rooted at baseDir. The directory is
// created on first save.
func NewTocStore(baseDir string) *TocStore {
	return &TocStore{baseDir: baseDir}
}

func (s *TocStore) path(guide, version string) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_toc_%s.json", guide, version))
}

// Load returns the cached links for a guide and version.
// Returns ENOTFOUND if no snapshot exists.
func (s *TocStore) Load(ctx context.Context, guide, version string) ([]fluentdoc.TocLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(guide, version))
	if os.IsNotExist(err) {
		return nil, fluentdoc.Errorf(fluentdoc.ENOTFOUND, "no cached TOC for %s %s", guide, version)
	} else if err != nil {
		return nil, err
	}

	var links []fluentdoc.TocLink
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fluentdoc.Errorf(fluentdoc.EINVALID, "corrupt TOC cache for %s %s: %v", guide, version, err)
	}
	return links, nil
}

// Save writes the links for a guide and version, replacing any previous
// snapshot. The write goes to a temp file first and is renamed into place
// so concurrent readers never observe a partial file.
func (s *TocStore) Save(ctx context.Context, guide, version string, links []fluentdoc.TocLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return err
	}

	target := s.path(guide, version)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
