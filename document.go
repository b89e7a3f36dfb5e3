package fluentdoc

import (
	"context"
	"time"
)

// DocContent is one successfully retrieved documentation section. It is
// immutable once produced and owned by the caller that requested it.
type DocContent struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Content    string   `json:"content"`
	Breadcrumb []string `json:"breadcrumb"`
}

// Validate returns an error if the document contains invalid fields.
func (d *DocContent) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// SavedDocument is a fetched section persisted to the local archive so that
// repeat lookups can be served without a browser session.
type SavedDocument struct {
	ID          string    `json:"id"`
	Guide       string    `json:"guide"`
	Key         string    `json:"key"`
	DocPath     string    `json:"docPath"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the saved document contains invalid fields.
func (d *SavedDocument) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "saved document source URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "saved document title required")
	}
	return nil
}

// ArchiveService represents a service for managing the local archive of
// fetched documentation sections.
type ArchiveService interface {
	// SaveDocument persists a fetched section. Saving the same source URL
	// again replaces the previous copy.
	SaveDocument(ctx context.Context, doc *SavedDocument) error

	// FindDocumentByID retrieves a saved document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*SavedDocument, error)

	// FindDocuments retrieves saved documents matching the filter, newest
	// first.
	FindDocuments(ctx context.Context, filter SavedDocumentFilter) ([]*SavedDocument, error)

	// DeleteDocument permanently removes a saved document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// SavedDocumentFilter represents a filter for FindDocuments.
type SavedDocumentFilter struct {
	ID        *string `json:"id"`
	Guide     *string `json:"guide"`
	Key       *string `json:"key"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
