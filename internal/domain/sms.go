package domain

import (
	"time"

	"github.com/google/uuid"
)

// SmsMessage is a write-once audit row for an outbound SMS.
type SmsMessage struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Content   string     `db:"content" json:"content"`
	Receivers StringList `db:"receivers" json:"receivers"`
	SentAt    time.Time  `db:"sent_at" json:"sent_at"`
}
