package cart

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository persists carts and their lines. Mutations keep the cart total
// in step with the lines inside a single transaction.
type Repository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID int64, item domain.Item, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID int64, quantity int) error
	Delete(ctx context.Context, id int64) error
}
