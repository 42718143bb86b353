package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field describes one entry of the form schema a service asks citizens to
// fill when opening a request.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type FieldList []Field

// Value implements driver.Valuer.
func (f FieldList) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner.
func (f *FieldList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for FieldList: %T", value)
	}

	return json.Unmarshal(bytes, f)
}

// Service is a public service offered through one or several institutions.
type Service struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Category       string    `db:"category" json:"category"`
	Fee            int64     `db:"fee" json:"fee"`
	ProcessingDays int       `db:"processing_days" json:"processing_days"`
	InstitutionIDs UUIDList  `db:"institution_ids" json:"institution_ids"`
	Fields         FieldList `db:"fields" json:"fields"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
