package order

import (
	"context"
	"testing"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByID(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

type stubOrderRepo struct {
	lastCreate orderrepo.CreateOrderInput
	orders     []domain.Order
	createErr  error
	listErr    error
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Order{ID: 1, UserID: in.UserID, Username: "herve", TotalCents: in.TotalCents}, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ int64) ([]domain.Order, error) {
	return s.orders, s.listErr
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, &stubOrderRepo{})

	_, err := svc.Submit(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_SnapshotsCart(t *testing.T) {
	user := &domain.User{ID: 1, Username: "herve", CartID: 7}
	cart := &domain.Cart{
		ID:         7,
		Username:   "herve",
		TotalCents: 299,
		Lines: []domain.CartLine{
			{ItemID: 1, Name: "Round Widget", Description: "A widget that is round", Quantity: 1, UnitPriceCents: 299, TotalCents: 299},
		},
	}
	orders := &stubOrderRepo{}
	svc := New(&stubUserRepo{user: user}, &stubCartRepo{cart: cart}, orders)

	order, err := svc.Submit(context.Background(), "herve")
	require.NoError(t, err)

	assert.Equal(t, int64(299), order.TotalCents)
	assert.Equal(t, "herve", order.Username)
	require.Len(t, orders.lastCreate.Lines, 1)
	line := orders.lastCreate.Lines[0]
	assert.Equal(t, "Round Widget", line.Name)
	assert.Equal(t, int64(299), line.UnitPriceCents)
	assert.Equal(t, 1, line.Quantity)
}

func TestHistory_UnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, &stubOrderRepo{})

	_, err := svc.History(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_ReturnsOrders(t *testing.T) {
	orders := &stubOrderRepo{orders: []domain.Order{
		{ID: 2, UserID: 1, Username: "herve", TotalCents: 598},
		{ID: 1, UserID: 1, Username: "herve", TotalCents: 299},
	}}
	svc := New(&stubUserRepo{user: &domain.User{ID: 1, Username: "herve", CartID: 7}}, &stubCartRepo{}, orders)

	got, err := svc.History(context.Background(), "herve")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}
