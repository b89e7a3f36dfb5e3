package mock

import (
	"context"

	"github.com/fwojciec/fluentdoc"
)

var _ fluentdoc.TocStore = (*TocStore)(nil)

// TocStore is a mock implementation of fluentdoc.TocStore.
type TocStore struct {
	LoadFn func(ctx context.Context, guide, version string) ([]fluentdoc.TocLink, error)
	SaveFn func(ctx context.Context, guide, version string, links []fluentdoc.TocLink) error
}

func (s *TocStore) Load(ctx context.Context, guide, version string) ([]fluentdoc.TocLink, error) {
	return s.LoadFn(ctx, guide, version)
}

func (s *TocStore) Save(ctx context.Context, guide, version string, links []fluentdoc.TocLink) error {
	if s.SaveFn == nil {
		return nil
	}
	return s.SaveFn(ctx, guide, version, links)
}
