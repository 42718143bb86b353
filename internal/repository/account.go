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

const accountColumns = `
	bin_to_uuid(id) as id, bin_to_uuid(user_id) as user_id, cni, password, otp_hash, confirmed,
	created_at, updated_at, deleted_at`

type accountRepository struct {
	db *sqlx.DB
}

func newAccountRepository(db *sqlx.DB) *accountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
	INSERT INTO account (id, user_id, cni, password)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query, account.ID, account.UserID, account.CNI, account.Password)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert account: %w", err)
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

func (r *accountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	query := `SELECT` + accountColumns + ` FROM account WHERE user_id = uuid_to_bin(?) AND deleted_at IS NULL`

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select account by user id failed: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByCNI(ctx context.Context, cni string) (*domain.Account, error) {
	query := `SELECT` + accountColumns + ` FROM account WHERE cni = ? AND deleted_at IS NULL`

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, cni); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select account by cni failed: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT` + accountColumns + ` FROM account WHERE deleted_at IS NULL ORDER BY created_at DESC`

	var accounts []domain.Account
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("select accounts failed: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) SetOtpHash(ctx context.Context, id uuid.UUID, otpHash string) error {
	const query = `UPDATE account SET otp_hash = ? WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, otpHash, id)
	if err != nil {
		return fmt.Errorf("update account otp hash failed: %w", err)
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

func (r *accountRepository) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE account SET confirmed = true, otp_hash = NULL WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("update account confirmed failed: %w", err)
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

func (r *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE account SET password = ? WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update account password failed: %w", err)
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

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE account SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete account: %w", err)
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
