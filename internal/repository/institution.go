package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/senservices/backend/internal/db"
	"github.com/senservices/backend/internal/domain"
)

const institutionColumns = `
	bin_to_uuid(id) as id, name, department, domain, locality,
	created_at, updated_at, deleted_at`

type institutionRepository struct {
	db *sqlx.DB
}

func newInstitutionRepository(db *sqlx.DB) *institutionRepository {
	return &institutionRepository{
		db: db,
	}
}

func (r *institutionRepository) Create(ctx context.Context, institution *domain.Institution) error {
	const query = `
	INSERT INTO institution (id, name, department, domain, locality)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		institution.ID,
		institution.Name,
		institution.Department,
		institution.Domain,
		institution.Locality,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert institution: %w", err)
	}
	return nil
}

func (r *institutionRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error) {
	query := `SELECT` + institutionColumns + ` FROM institution WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var institution domain.Institution
	if err := r.db.GetContext(ctx, &institution, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select institution by id failed: %w", err)
	}
	return &institution, nil
}

func (r *institutionRepository) GetByName(ctx context.Context, name string) (*domain.Institution, error) {
	query := `SELECT` + institutionColumns + ` FROM institution WHERE name = ? AND deleted_at IS NULL`

	var institution domain.Institution
	if err := r.db.GetContext(ctx, &institution, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select institution by name failed: %w", err)
	}
	return &institution, nil
}

func (r *institutionRepository) GetAll(ctx context.Context) ([]domain.Institution, error) {
	query := `SELECT` + institutionColumns + ` FROM institution WHERE deleted_at IS NULL ORDER BY name`

	var institutions []domain.Institution
	if err := r.db.SelectContext(ctx, &institutions, query); err != nil {
		return nil, fmt.Errorf("select institutions failed: %w", err)
	}
	return institutions, nil
}

func (r *institutionRepository) Update(ctx context.Context, institution *domain.Institution) error {
	const query = `
	UPDATE institution SET name = ?, department = ?, domain = ?, locality = ?
	WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`

	_, err := r.db.ExecContext(ctx, query,
		institution.Name,
		institution.Department,
		institution.Domain,
		institution.Locality,
		institution.ID,
	)
	if err != nil {
		return fmt.Errorf("update institution by id failed: %w", err)
	}
	return nil
}

func (r *institutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE institution SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete institution: %w", err)
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
