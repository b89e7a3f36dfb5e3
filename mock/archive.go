package mock

import (
	"context"

	"github.com/fwojciec/fluentdoc"
)

var _ fluentdoc.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of fluentdoc.ArchiveService.
type ArchiveService struct {
	SaveDocumentFn     func(ctx context.Context, doc *fluentdoc.SavedDocument) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*fluentdoc.SavedDocument, error)
	FindDocumentsFn    func(ctx context.Context, filter fluentdoc.SavedDocumentFilter) ([]*fluentdoc.SavedDocument, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *ArchiveService) SaveDocument(ctx context.Context, doc *fluentdoc.SavedDocument) error {
	return s.SaveDocumentFn(ctx, doc)
}

func (s *ArchiveService) FindDocumentByID(ctx context.Context, id string) (*fluentdoc.SavedDocument, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *ArchiveService) FindDocuments(ctx context.Context, filter fluentdoc.SavedDocumentFilter) ([]*fluentdoc.SavedDocument, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *ArchiveService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
