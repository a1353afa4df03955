package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tzt-server/internal/domain"
	"tzt-server/internal/repository"
)

const createContactMessagesTable = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

type ContactMessageRepository struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) repository.ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContactMessagesTable); err != nil {
		return fmt.Errorf("create contact_messages table: %w", err)
	}
	return nil
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO contact_messages (id, name, email, message, created_at)
VALUES (?, ?, ?, ?, ?)`,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, message, created_at
FROM contact_messages
ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}
