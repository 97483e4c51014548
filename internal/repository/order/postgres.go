package order

import (
	"context"

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

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var out domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents)
VALUES ($1, $2)
RETURNING id, user_id, total_cents, created_at
`, in.UserID, in.TotalCents).Scan(&out.ID, &out.UserID, &out.TotalCents, &out.CreatedAt)
	if err != nil {
		return nil, err
	}

	out.Lines = make([]domain.OrderLine, 0, len(in.Lines))
	for _, line := range in.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, item_id, name, description, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`, out.ID, line.ItemID, line.Name, line.Description, line.Quantity, line.UnitPriceCents); err != nil {
			return nil, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		out.Lines = append(out.Lines, line)
	}

	if err := tx.QueryRow(ctx, `
SELECT username FROM users WHERE id = $1
`, in.UserID).Scan(&out.Username); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const q = `
SELECT o.id, o.user_id, u.username, o.total_cents, o.created_at
FROM orders o
JOIN users u ON u.id = o.user_id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.orderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (r *postgresRepo) orderLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	const q = `
SELECT item_id, name, description, quantity, unit_price_cents
FROM order_items
WHERE order_id = $1
ORDER BY item_id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Description, &line.Quantity, &line.UnitPriceCents); err != nil {
			return nil, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
