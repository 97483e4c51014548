package item

import (
	"context"

	"storefront-api/internal/domain"
)

// Repository reads and writes the item catalog.
type Repository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) ([]domain.Item, error)
	Upsert(ctx context.Context, item domain.Item) (*domain.Item, error)
}
