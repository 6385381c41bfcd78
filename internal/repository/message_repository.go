package repository

import (
	"context"
	"fmt"
	"time"

	"chatapp/internal/domain/message"
	chat_errors "chatapp/pkg/errors"
)

type SQLMessageRepository struct {
	db      DBTX
	dialect Rebinder
}

func NewMessageRepository(db DBTX, dialect Rebinder) MessageRepository {
	return &SQLMessageRepository{db: db, dialect: dialect}
}

func (r *SQLMessageRepository) List(ctx context.Context) ([]message.Message, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, text, date FROM message ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]message.Message, 0)
	for rows.Next() {
		var (
			m    message.Message
			date scanTime
		)
		if err := rows.Scan(&m.ID, &m.Text, &date); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Date = date.Time
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (r *SQLMessageRepository) Create(ctx context.Context, m *message.Message) error {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	// Postgres TIMESTAMP keeps microseconds; truncate so the returned row matches a later read.
	m.Date = m.Date.UTC().Truncate(time.Microsecond)

	query := r.dialect.Rebind("INSERT INTO message (text, date) VALUES (?, ?) RETURNING id")
	err := r.db.QueryRowContext(ctx, query, m.Text, m.Date).Scan(&m.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", chat_errors.ErrInvalidInput, err)
		}
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}
