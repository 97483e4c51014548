package order

import (
	"context"
	"fmt"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type cartRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

// Service submits and lists orders.
type Service struct {
	users  userRepo
	carts  cartRepo
	orders orderRepo
}

// New creates a Service.
func New(users userRepo, carts cartRepo, orders orderRepo) *Service {
	return &Service{users: users, carts: carts, orders: orders}
}

// Submit snapshots the user's current cart into a new order. The order's
// lines and total are copies frozen at this moment.
func (s *Service) Submit(ctx context.Context, username string) (*domain.Order, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.GetByID(ctx, user.CartID)
	if err != nil {
		return nil, fmt.Errorf("load cart %d: %w", user.CartID, err)
	}

	lines := make([]domain.OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, domain.OrderLine{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			TotalCents:     l.TotalCents,
		})
	}

	return s.orders.Create(ctx, orderrepo.CreateOrderInput{
		UserID:     user.ID,
		TotalCents: cart.TotalCents,
		Lines:      lines,
	})
}

// History lists all orders placed by the user, newest first.
func (s *Service) History(ctx context.Context, username string) ([]domain.Order, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, user.ID)
}
