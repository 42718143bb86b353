package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file. Immutable once created except for deletion.
type Document struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UploaderID   uuid.UUID `db:"uploader_id" json:"uploader_id"`
	OriginalName string    `db:"original_name" json:"original_name"`
	MimeType     string    `db:"mime_type" json:"mime_type"`
	Size         int64     `db:"size" json:"size"`
	Payload      []byte    `db:"payload" json:"-"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
