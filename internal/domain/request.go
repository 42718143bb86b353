package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestState string

const (
	RequestStateEnCours  RequestState = "en-cours"
	RequestStateConfirme RequestState = "confirme"
	RequestStateTermine  RequestState = "termine"
	RequestStateRejete   RequestState = "rejete"
)

// CanTransitionTo enforces forward-only request transitions. A request can
// be rejected from any non-final state.
func (s RequestState) CanTransitionTo(next RequestState) bool {
	switch s {
	case RequestStateEnCours:
		return next == RequestStateConfirme || next == RequestStateRejete
	case RequestStateConfirme:
		return next == RequestStateTermine || next == RequestStateRejete
	default:
		return false
	}
}

// Request is a citizen's demand for a service at a given institution.
type Request struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	CitizenID     uuid.UUID    `db:"citizen_id" json:"citizen_id"`
	ServiceID     uuid.UUID    `db:"service_id" json:"service_id"`
	InstitutionID uuid.UUID    `db:"institution_id" json:"institution_id"`
	State         RequestState `db:"state" json:"state"`
	DocumentIDs   UUIDList     `db:"document_ids" json:"document_ids"`
	ProcessedBy   UUIDList     `db:"processed_by" json:"processed_by"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
