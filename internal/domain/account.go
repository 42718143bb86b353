package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Account is the credential record, distinct from the base User profile.
// At most one non-deleted account exists per user id and per CNI.
type Account struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	CNI       string         `db:"cni" json:"cni"`
	Password  string         `db:"password" json:"-"`
	OtpHash   sql.NullString `db:"otp_hash" json:"-"`
	Confirmed bool           `db:"confirmed" json:"confirmed"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
