package order

import (
	"context"

	"storefront-api/internal/domain"
)

// CreateOrderInput is the frozen snapshot persisted at submission time.
type CreateOrderInput struct {
	UserID     int64
	TotalCents int64
	Lines      []domain.OrderLine
}

// Repository persists orders. Orders are written once and never updated.
type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}
