package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/senservices/backend/internal/domain"
)

const documentMetaColumns = `
	bin_to_uuid(id) as id, bin_to_uuid(uploader_id) as uploader_id, original_name, mime_type, size,
	created_at, updated_at, deleted_at`

type documentRepository struct {
	db *sqlx.DB
}

func newDocumentRepository(db *sqlx.DB) *documentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) Create(ctx context.Context, document *domain.Document) error {
	const query = `
	INSERT INTO document (id, uploader_id, original_name, mime_type, size, payload)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		document.ID,
		document.UploaderID,
		document.OriginalName,
		document.MimeType,
		document.Size,
		document.Payload,
	)
	if err != nil {
		return fmt.Errorf("db insert document: %w", err)
	}
	return nil
}

func (r *documentRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := `SELECT` + documentMetaColumns + `, payload FROM document WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var document domain.Document
	if err := r.db.GetContext(ctx, &document, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select document by id failed: %w", err)
	}
	return &document, nil
}

// GetMetaByID skips the payload column; existence checks and listings never
// need the blob.
func (r *documentRepository) GetMetaByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := `SELECT` + documentMetaColumns + ` FROM document WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var document domain.Document
	if err := r.db.GetContext(ctx, &document, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select document meta by id failed: %w", err)
	}
	return &document, nil
}

func (r *documentRepository) GetAllByUploader(ctx context.Context, uploaderID uuid.UUID) ([]domain.Document, error) {
	query := `SELECT` + documentMetaColumns + ` FROM document WHERE uploader_id = uuid_to_bin(?) AND deleted_at IS NULL ORDER BY created_at DESC`

	var documents []domain.Document
	if err := r.db.SelectContext(ctx, &documents, query, uploaderID); err != nil {
		return nil, fmt.Errorf("select documents by uploader failed: %w", err)
	}
	return documents, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE document SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete document: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
