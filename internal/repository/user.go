package repository

import (
	"context"

	"tzt-server/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Implementations must enforce email uniqueness and surface violations
// as domain.ErrDuplicateEmail so the duplicate-registration race resolves
// identically to the sequential case.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
