package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type itemSeed struct {
	Name        string
	Description string
	PriceCents  int64
}

// Apply inserts basic catalog data for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []itemSeed{
		{
			Name:        "Round Widget",
			Description: "A widget that is round",
			PriceCents:  299,
		},
		{
			Name:        "Square Widget",
			Description: "A widget that is square",
			PriceCents:  199,
		},
	}

	for _, it := range items {
		if err := upsertItem(ctx, pool, it); err != nil {
			return fmt.Errorf("upsert item %s: %w", it.Name, err)
		}
	}

	return nil
}

func upsertItem(ctx context.Context, pool *pgxpool.Pool, it itemSeed) error {
	const q = `
INSERT INTO items (name, description, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, it.Name, it.Description, it.PriceCents)
	return err
}
