package cart

import (
	"context"

	"storefront-api/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

type cartRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID int64, item domain.Item, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID int64, quantity int) error
}

// Service mutates user carts.
type Service struct {
	users userRepo
	items itemRepo
	carts cartRepo
}

// New creates a Service.
func New(users userRepo, items itemRepo, carts cartRepo) *Service {
	return &Service{users: users, items: items, carts: carts}
}

// ModifyInput identifies the cart (via its owner) and the item to add or
// remove. Quantity models repeated entries of the same item.
type ModifyInput struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Add appends Quantity copies of the item to the user's cart and returns
// the updated cart. Unknown user or item yields domain.ErrNotFound. A
// non-positive quantity adds nothing and returns the cart as is.
func (s *Service) Add(ctx context.Context, in ModifyInput) (*domain.Cart, error) {
	user, item, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Quantity > 0 {
		if err := s.carts.AddItem(ctx, user.CartID, *item, in.Quantity); err != nil {
			return nil, err
		}
	}
	return s.carts.GetByID(ctx, user.CartID)
}

// Remove deletes up to Quantity occurrences of the item from the user's
// cart and returns the updated cart. Not-found semantics mirror Add, and
// a non-positive quantity is likewise a no-op.
func (s *Service) Remove(ctx context.Context, in ModifyInput) (*domain.Cart, error) {
	user, item, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Quantity > 0 {
		if err := s.carts.RemoveItem(ctx, user.CartID, item.ID, in.Quantity); err != nil {
			return nil, err
		}
	}
	return s.carts.GetByID(ctx, user.CartID)
}

func (s *Service) resolve(ctx context.Context, in ModifyInput) (*domain.User, *domain.Item, error) {
	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, nil, err
	}
	return user, item, nil
}
