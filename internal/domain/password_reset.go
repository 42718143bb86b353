package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a single-use reset token sent to the user by SMS.
type PasswordReset struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	Token      string     `db:"token" json:"-"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	ConsumedAt *time.Time `db:"consumed_at" json:"consumed_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
