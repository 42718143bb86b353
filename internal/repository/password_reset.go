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

type passwordResetRepository struct {
	db *sqlx.DB
}

func newPasswordResetRepository(db *sqlx.DB) *passwordResetRepository {
	return &passwordResetRepository{
		db: db,
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	const query = `
	INSERT INTO password_reset (id, user_id, token, expires_at)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?);
	`

	_, err := r.db.ExecContext(ctx, query, reset.ID, reset.UserID, reset.Token, reset.ExpiresAt)
	if err != nil {
		return fmt.Errorf("db insert password reset: %w", err)
	}
	return nil
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(user_id) as user_id, token, expires_at, consumed_at, created_at
	FROM password_reset WHERE token = ?
	`

	var reset domain.PasswordReset
	if err := r.db.GetContext(ctx, &reset, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select password reset by token failed: %w", err)
	}
	return &reset, nil
}

func (r *passwordResetRepository) Consume(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE password_reset SET consumed_at = NOW() WHERE id = uuid_to_bin(?) AND consumed_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("update password reset consumed failed: %w", err)
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
