package repository

import (
	"context"

	"company-cms/internal/domain"
)

// UserRepository defines persistence operations for User entities. The users
// table carries UNIQUE constraints on username and email; Create surfaces
// violations as domain.ErrConflict, which is the correctness authority for
// concurrent registrations.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
