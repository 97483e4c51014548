package item

import (
	"context"

	"storefront-api/internal/domain"
	itemrepo "storefront-api/internal/repository/item"
)

// Service exposes catalog lookups.
type Service struct {
	repo itemrepo.Repository
}

// New creates a Service.
func New(repo itemrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

// GetByID returns one item or domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByName returns all items with the given name. An empty slice is a
// valid result; the caller decides how to present it.
func (s *Service) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	return s.repo.GetByName(ctx, name)
}
