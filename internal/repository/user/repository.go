package user

import (
	"context"

	"storefront-api/internal/domain"
)

// CreateUserInput carries the persisted fields for a new user. The cart must
// already exist; users reference their cart, never the other way around.
type CreateUserInput struct {
	Username     string
	PasswordHash string
	CartID       int64
}

// Repository persists and fetches users.
type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
