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

const requestColumns = `
	bin_to_uuid(id) as id, bin_to_uuid(citizen_id) as citizen_id,
	bin_to_uuid(service_id) as service_id, bin_to_uuid(institution_id) as institution_id,
	state, document_ids, processed_by, created_at, updated_at, deleted_at`

type requestRepository struct {
	db *sqlx.DB
}

func newRequestRepository(db *sqlx.DB) *requestRepository {
	return &requestRepository{
		db: db,
	}
}

func (r *requestRepository) Create(ctx context.Context, request *domain.Request) error {
	const query = `
	INSERT INTO request (id, citizen_id, service_id, institution_id, state, document_ids, processed_by)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		request.ID,
		request.CitizenID,
		request.ServiceID,
		request.InstitutionID,
		request.State,
		request.DocumentIDs,
		request.ProcessedBy,
	)
	if err != nil {
		return fmt.Errorf("db insert request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *requestRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	query := `SELECT` + requestColumns + ` FROM request WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var request domain.Request
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select request by id failed: %w", err)
	}
	return &request, nil
}

func (r *requestRepository) GetAll(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT` + requestColumns + ` FROM request WHERE deleted_at IS NULL ORDER BY created_at DESC`

	var requests []domain.Request
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("select requests failed: %w", err)
	}
	return requests, nil
}

func (r *requestRepository) GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Request, error) {
	query := `SELECT` + requestColumns + ` FROM request WHERE citizen_id = uuid_to_bin(?) AND deleted_at IS NULL ORDER BY created_at DESC`

	var requests []domain.Request
	if err := r.db.SelectContext(ctx, &requests, query, citizenID); err != nil {
		return nil, fmt.Errorf("select requests by citizen failed: %w", err)
	}
	return requests, nil
}

func (r *requestRepository) GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Request, error) {
	query := `SELECT` + requestColumns + ` FROM request WHERE institution_id = uuid_to_bin(?) AND deleted_at IS NULL ORDER BY created_at DESC`

	var requests []domain.Request
	if err := r.db.SelectContext(ctx, &requests, query, institutionID); err != nil {
		return nil, fmt.Errorf("select requests by institution failed: %w", err)
	}
	return requests, nil
}

func (r *requestRepository) UpdateState(ctx context.Context, request *domain.Request) error {
	const query = `
	UPDATE request SET state = ?, processed_by = ?
	WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`

	res, err := r.db.ExecContext(ctx, query, request.State, request.ProcessedBy, request.ID)
	if err != nil {
		return fmt.Errorf("update request state failed: %w", err)
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

func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE request SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete request: %w", err)
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
