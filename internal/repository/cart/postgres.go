package cart

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

func (r *postgresRepo) Create(ctx context.Context) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (total_cents)
VALUES (0)
RETURNING id, total_cents, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q).Scan(&cart.ID, &cart.TotalCents, &cart.CreatedAt); err != nil {
		return nil, err
	}
	cart.Lines = []domain.CartLine{}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	const cartQuery = `
SELECT c.id, COALESCE(u.username, ''), c.total_cents, c.created_at
FROM carts c
LEFT JOIN users u ON u.cart_id = c.id
WHERE c.id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, id).Scan(&cart.ID, &cart.Username, &cart.TotalCents, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const linesQuery = `
SELECT ci.item_id, i.name, i.description, ci.quantity, ci.unit_price_cents
FROM cart_items ci
JOIN items i ON i.id = ci.item_id
WHERE ci.cart_id = $1
ORDER BY ci.item_id
`
	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Lines = []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Description, &line.Quantity, &line.UnitPriceCents); err != nil {
			return nil, err
		}
		line.TotalCents = line.UnitPriceCents * int64(line.Quantity)
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID int64, item domain.Item, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO cart_items (cart_id, item_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (cart_id, item_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
`
	if _, err := tx.Exec(ctx, q, cartID, item.ID, quantity, item.PriceCents); err != nil {
		return err
	}
	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, itemID int64, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existing int
	err = tx.QueryRow(ctx, `
SELECT quantity FROM cart_items
WHERE cart_id = $1 AND item_id = $2
`, cartID, itemID).Scan(&existing)
	if errors.Is(err, pgx.ErrNoRows) {
		// removing an item that is not in the cart is a no-op
		return tx.Commit(ctx)
	}
	if err != nil {
		return err
	}

	if existing <= quantity {
		if _, err := tx.Exec(ctx, `
DELETE FROM cart_items WHERE cart_id = $1 AND item_id = $2
`, cartID, itemID); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec(ctx, `
UPDATE cart_items SET quantity = quantity - $3
WHERE cart_id = $1 AND item_id = $2
`, cartID, itemID, quantity); err != nil {
			return err
		}
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID int64) error {
	const q = `
UPDATE carts
SET total_cents = COALESCE((
    SELECT SUM(quantity * unit_price_cents)
    FROM cart_items
    WHERE cart_id = $1
), 0)
WHERE id = $1
`
	_, err := tx.Exec(ctx, q, cartID)
	return err
}
