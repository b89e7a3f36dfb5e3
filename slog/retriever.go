// Package slog provides logging decorators for fluentdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fluentdoc"
)

// Ensure LoggingRetriever implements fluentdoc.Retriever.
var _ fluentdoc.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with structured logging of every
// retrieval attempt and its outcome.
type LoggingRetriever struct {
	next   fluentdoc.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next fluentdoc.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// FetchByKey logs the key lookup and delegates to the wrapped retriever.
func (r *LoggingRetriever) FetchByKey(ctx context.Context, key string) (doc *fluentdoc.DocContent, err error) {
	defer func(begin time.Time) {
		r.logger.Info("fetch by key",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FetchByKey(ctx, key)
}

// FetchByPath logs the path fetch and delegates to the wrapped retriever.
func (r *LoggingRetriever) FetchByPath(ctx context.Context, path string) (doc *fluentdoc.DocContent, err error) {
	defer func(begin time.Time) {
		r.logger.Info("fetch by path",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FetchByPath(ctx, path)
}

// FetchByQuery logs the query resolution and delegates to the wrapped
// retriever.
func (r *LoggingRetriever) FetchByQuery(ctx context.Context, query, guide string) (doc *fluentdoc.DocContent, err error) {
	defer func(begin time.Time) {
		title := ""
		if doc != nil {
			title = doc.Title
		}
		r.logger.Info("fetch by query",
			"query", query,
			"guide", guide,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FetchByQuery(ctx, query, guide)
}

// BuildIndex logs the index build and delegates to the wrapped retriever.
func (r *LoggingRetriever) BuildIndex(ctx context.Context, guide string) (entries []fluentdoc.TocEntry, err error) {
	defer func(begin time.Time) {
		r.logger.Info("build index",
			"guide", guide,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.BuildIndex(ctx, guide)
}
