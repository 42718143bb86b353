package domain

import (
	"time"

	"github.com/google/uuid"
)

type RendezvousState string

const (
	RendezvousStatePlanifie RendezvousState = "planifie"
	RendezvousStateHonore   RendezvousState = "honore"
	RendezvousStateAnnule   RendezvousState = "annule"
)

// Rendezvous is a scheduled appointment between a citizen and an institution.
type Rendezvous struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CitizenID     uuid.UUID       `db:"citizen_id" json:"citizen_id"`
	InstitutionID uuid.UUID       `db:"institution_id" json:"institution_id"`
	ScheduledAt   time.Time       `db:"scheduled_at" json:"scheduled_at"`
	Reason        string          `db:"reason" json:"reason"`
	State         RendezvousState `db:"state" json:"state"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
