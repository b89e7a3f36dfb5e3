package mock

import (
	"context"

	"github.com/fwojciec/fluentdoc"
)

var _ fluentdoc.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of fluentdoc.Retriever.
type Retriever struct {
	FetchByKeyFn   func(ctx context.Context, key string) (*fluentdoc.DocContent, error)
	FetchByPathFn  func(ctx context.Context, path string) (*fluentdoc.DocContent, error)
	FetchByQueryFn func(ctx context.Context, query, guide string) (*fluentdoc.DocContent, error)
	BuildIndexFn   func(ctx context.Context, guide string) ([]fluentdoc.TocEntry, error)
}

func (r *Retriever) FetchByKey(ctx context.Context, key string) (*fluentdoc.DocContent, error) {
	return r.FetchByKeyFn(ctx, key)
}

func (r *Retriever) FetchByPath(ctx context.Context, path string) (*fluentdoc.DocContent, error) {
	return r.FetchByPathFn(ctx, path)
}

func (r *Retriever) FetchByQuery(ctx context.Context, query, guide string) (*fluentdoc.DocContent, error) {
	return r.FetchByQueryFn(ctx, query, guide)
}

func (r *Retriever) BuildIndex(ctx context.Context, guide string) ([]fluentdoc.TocEntry, error) {
	return r.BuildIndexFn(ctx, guide)
}
