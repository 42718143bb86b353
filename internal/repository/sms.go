package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/senservices/backend/internal/domain"
)

type smsRepository struct {
	db *sqlx.DB
}

func newSmsRepository(db *sqlx.DB) *smsRepository {
	return &smsRepository{
		db: db,
	}
}

func (r *smsRepository) Create(ctx context.Context, message *domain.SmsMessage) error {
	const query = `
	INSERT INTO sms_message (id, content, receivers, sent_at)
	VALUES (uuid_to_bin(?), ?, ?, ?);
	`

	res, err := r.db.ExecContext(ctx, query, message.ID, message.Content, message.Receivers, message.SentAt)
	if err != nil {
		return fmt.Errorf("db insert sms message: %w", err)
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

func (r *smsRepository) GetAll(ctx context.Context) ([]domain.SmsMessage, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, content, receivers, sent_at
	FROM sms_message ORDER BY sent_at DESC
	`

	var messages []domain.SmsMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("select sms messages failed: %w", err)
	}
	return messages, nil
}
