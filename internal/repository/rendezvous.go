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

const rendezvousColumns = `
	bin_to_uuid(id) as id, bin_to_uuid(citizen_id) as citizen_id,
	bin_to_uuid(institution_id) as institution_id, scheduled_at, reason, state,
	created_at, updated_at, deleted_at`

type rendezvousRepository struct {
	db *sqlx.DB
}

func newRendezvousRepository(db *sqlx.DB) *rendezvousRepository {
	return &rendezvousRepository{
		db: db,
	}
}

func (r *rendezvousRepository) Create(ctx context.Context, rendezvous *domain.Rendezvous) error {
	const query = `
	INSERT INTO rendezvous (id, citizen_id, institution_id, scheduled_at, reason, state)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		rendezvous.ID,
		rendezvous.CitizenID,
		rendezvous.InstitutionID,
		rendezvous.ScheduledAt,
		rendezvous.Reason,
		rendezvous.State,
	)
	if err != nil {
		return fmt.Errorf("db insert rendezvous: %w", err)
	}
	return nil
}

func (r *rendezvousRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Rendezvous, error) {
	query := `SELECT` + rendezvousColumns + ` FROM rendezvous WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var rendezvous domain.Rendezvous
	if err := r.db.GetContext(ctx, &rendezvous, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select rendezvous by id failed: %w", err)
	}
	return &rendezvous, nil
}

func (r *rendezvousRepository) GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Rendezvous, error) {
	query := `SELECT` + rendezvousColumns + ` FROM rendezvous WHERE citizen_id = uuid_to_bin(?) AND deleted_at IS NULL ORDER BY scheduled_at`

	var items []domain.Rendezvous
	if err := r.db.SelectContext(ctx, &items, query, citizenID); err != nil {
		return nil, fmt.Errorf("select rendezvous by citizen failed: %w", err)
	}
	return items, nil
}

func (r *rendezvousRepository) GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Rendezvous, error) {
	query := `SELECT` + rendezvousColumns + ` FROM rendezvous WHERE institution_id = uuid_to_bin(?) AND deleted_at IS NULL ORDER BY scheduled_at`

	var items []domain.Rendezvous
	if err := r.db.SelectContext(ctx, &items, query, institutionID); err != nil {
		return nil, fmt.Errorf("select rendezvous by institution failed: %w", err)
	}
	return items, nil
}

func (r *rendezvousRepository) Update(ctx context.Context, rendezvous *domain.Rendezvous) error {
	const query = `
	UPDATE rendezvous SET scheduled_at = ?, reason = ?, state = ?
	WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`

	res, err := r.db.ExecContext(ctx, query,
		rendezvous.ScheduledAt,
		rendezvous.Reason,
		rendezvous.State,
		rendezvous.ID,
	)
	if err != nil {
		return fmt.Errorf("update rendezvous by id failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *rendezvousRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE rendezvous SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete rendezvous: %w", err)
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
