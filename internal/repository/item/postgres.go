package item

import (
	"context"
	"errors"

	"storefront-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const itemColumns = `id, name, description, price_cents, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	err := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 LIMIT 1`, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.PriceCents, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *postgresRepo) Upsert(ctx context.Context, item domain.Item) (*domain.Item, error) {
	const q = `
INSERT INTO items (name, description, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents
RETURNING ` + itemColumns
	var it domain.Item
	err := r.pool.QueryRow(ctx, q, item.Name, item.Description, item.PriceCents).
		Scan(&it.ID, &it.Name, &it.Description, &it.PriceCents, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.PriceCents, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
