package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCitoyen       Role = "citoyen"
	RoleFonctionnaire Role = "fonctionnaire"
	RoleAdmin         Role = "admin"
)

// User is the base profile shared by citizens, civil servants and admins.
// Role-specific data references it by id instead of subclassing it.
type User struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	CNI       string         `db:"cni" json:"cni"`
	Phone     string         `db:"phone" json:"phone"`
	FirstName string         `db:"first_name" json:"first_name"`
	LastName  string         `db:"last_name" json:"last_name"`
	BirthDate sql.NullTime   `db:"birth_date" json:"birth_date"`
	Job       sql.NullString `db:"job" json:"job"`
	Sex       sql.NullString `db:"sex" json:"sex"`
	Email     sql.NullString `db:"email" json:"email"`
	Password  string         `db:"password" json:"-"`
	Role      Role           `db:"role" json:"role"`

	// InstitutionID is set for fonctionnaire profiles only.
	InstitutionID *uuid.UUID `db:"institution_id" json:"institution_id,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
