package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fluentdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ fluentdoc.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements fluentdoc.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// SaveDocument persists a fetched section. Saving the same source URL again
// replaces the previous copy.
func (s *ArchiveService) SaveDocument(ctx context.Context, doc *fluentdoc.SavedDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_documents (id, guide, key, doc_path, source_url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			id = excluded.id,
			guide = excluded.guide,
			key = excluded.key,
			doc_path = excluded.doc_path,
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, doc.ID, doc.Guide, doc.Key, doc.DocPath, doc.SourceURL, doc.Title, doc.Content,
		doc.ContentHash, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a saved document by ID.
func (s *ArchiveService) FindDocumentByID(ctx context.Context, id string) (*fluentdoc.SavedDocument, error) {
	var doc fluentdoc.SavedDocument
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, guide, key, doc_path, source_url, title, content, content_hash, fetched_at
		FROM saved_documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Guide, &doc.Key, &doc.DocPath, &doc.SourceURL, &doc.Title,
		&doc.Content, &doc.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, fluentdoc.Errorf(fluentdoc.ENOTFOUND, "saved document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves saved documents matching the filter, newest first.
func (s *ArchiveService) FindDocuments(ctx context.Context, filter fluentdoc.SavedDocumentFilter) ([]*fluentdoc.SavedDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, guide, key, doc_path, source_url, title, content, content_hash, fetched_at
		FROM saved_documents WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Guide != nil {
		query.WriteString(" AND guide = ?")
		args = append(args, *filter.Guide)
	}
	if filter.Key != nil {
		query.WriteString(" AND key = ?")
		args = append(args, *filter.Key)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*fluentdoc.SavedDocument
	for rows.Next() {
		var doc fluentdoc.SavedDocument
		var fetchedAt string
		if err := rows.Scan(&doc.ID, &doc.Guide, &doc.Key, &doc.DocPath, &doc.SourceURL,
			&doc.Title, &doc.Content, &doc.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}
		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// DeleteDocument permanently removes a saved document.
func (s *ArchiveService) DeleteDocument(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM saved_documents WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fluentdoc.Errorf(fluentdoc.ENOTFOUND, "saved document not found")
	}
	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if the values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
