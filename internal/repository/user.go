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

const userColumns = `
	bin_to_uuid(id) as id, cni, phone, first_name, last_name, birth_date, job, sex, email,
	password, role, bin_to_uuid(institution_id) as institution_id,
	created_at, updated_at, deleted_at`

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, cni, phone, first_name, last_name, birth_date, job, sex, email, password, role, institution_id)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, uuid_to_bin(?));
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.CNI,
		user.Phone,
		user.FirstName,
		user.LastName,
		user.BirthDate,
		user.Job,
		user.Sex,
		user.Email,
		user.Password,
		user.Role,
		user.InstitutionID,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
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

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM user WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM user WHERE phone = ? AND deleted_at IS NULL`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by phone failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByCNI(ctx context.Context, cni string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM user WHERE cni = ? AND deleted_at IS NULL`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, cni); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by cni failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM user WHERE email = ? AND deleted_at IS NULL`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetAllByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `SELECT` + userColumns + ` FROM user WHERE role = ? AND deleted_at IS NULL ORDER BY created_at DESC`

	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("select users by role failed: %w", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
	UPDATE user
	SET phone = ?, first_name = ?, last_name = ?, birth_date = ?, job = ?, sex = ?, email = ?, institution_id = uuid_to_bin(?)
	WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Phone,
		user.FirstName,
		user.LastName,
		user.BirthDate,
		user.Job,
		user.Sex,
		user.Email,
		user.InstitutionID,
		user.ID,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update user by id failed: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE user SET password = ? WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update user password failed: %w", err)
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

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE user SET deleted_at = NOW() WHERE id = uuid_to_bin(?) AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete user: %w", err)
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
