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

const serviceColumns = `
	bin_to_uuid(id) as id, name, category, fee, processing_days, institution_ids, fields,
	created_at, updated_at, deleted_at`

type serviceRepository struct {
	db *sqlx.DB
}

func newServiceRepository(db *sqlx.DB) *serviceRepository {
	return &serviceRepository{
		db: db,
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
	INSERT INTO service (id, name, category, fee, processing_days, institution_ids, fields)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Category,
		service.Fee,
		service.ProcessingDays,
		service.InstitutionIDs,
		service.Fields,
	)
	if err != nil {
		return fmt.Errorf("db insert service: %w", err)
	}
	return nil
}

func (r *serviceRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `SELECT` + serviceColumns + ` FROM service WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var service domain.Service
	if err := r.db.GetContext(ctx, &service, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select service by id failed: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	query := `SELECT` + serviceColumns + ` FROM service WHERE deleted_at IS NULL ORDER BY name`

	var services []domain.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("select services failed: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	const query = `
	UPDATE service SET name = ?, category = ?, fee = ?, processing_days = ?, institution_ids = ?, fields = ?
	WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`

	res, err := r.db.ExecContext(ctx, query,
		service.Name,
		service.Category,
		service.Fee,
		service.ProcessingDays,
		service.InstitutionIDs,
		service.Fields,
		service.ID,
	)
	if err != nil {
		return fmt.Errorf("update service by id failed: %w", err)
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

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE service SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete service: %w", err)
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
