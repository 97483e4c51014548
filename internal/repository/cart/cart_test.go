package cart

import (
	"context"
	"os"
	"testing"

	"storefront-api/internal/domain"
	itemrepo "storefront-api/internal/repository/item"
	"storefront-api/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, cart_items, users, carts, items RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestPostgres_AddAndRemoveKeepsTotal(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	items := itemrepo.NewPostgres(pool)
	widget, err := items.Upsert(ctx, domain.Item{Name: "Round Widget", Description: "A widget that is round", PriceCents: 299})
	if err != nil {
		t.Fatalf("upsert item: %v", err)
	}

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cart.TotalCents != 0 || len(cart.Lines) != 0 {
		t.Fatalf("new cart not empty: %+v", cart)
	}

	if err := repo.AddItem(ctx, cart.ID, *widget, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	got, err := repo.GetByID(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalCents != 598 {
		t.Fatalf("expected total 598, got %d", got.TotalCents)
	}
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", got.Lines)
	}

	// adding the same item again merges into the existing line
	if err := repo.AddItem(ctx, cart.ID, *widget, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	got, err = repo.GetByID(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalCents != 897 || got.Lines[0].Quantity != 3 {
		t.Fatalf("expected qty 3 total 897, got %+v", got)
	}

	// removing more than present drops the line entirely
	if err := repo.RemoveItem(ctx, cart.ID, widget.ID, 5); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	got, err = repo.GetByID(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalCents != 0 || len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestPostgres_RemoveAbsentItemIsNoop(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.RemoveItem(ctx, cart.ID, 12345, 1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	got, err := repo.GetByID(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalCents != 0 {
		t.Fatalf("expected total 0, got %d", got.TotalCents)
	}
}

func TestPostgres_GetMissingCart(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	if _, err := repo.GetByID(ctx, 999999); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
