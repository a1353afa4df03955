package repository

import (
	"context"

	"tzt-server/internal/domain"
)

// ContactMessageRepository defines persistence operations for contact-form
// submissions.
type ContactMessageRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}
