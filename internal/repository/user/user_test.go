package user

import (
	"context"
	"errors"
	"os"
	"testing"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
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
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, cart_items, users, carts, items RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	cart, err := cartrepo.NewPostgres(pool).Create(ctx)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, CreateUserInput{
		Username:     "herve",
		PasswordHash: "hashedHervePassword",
		CartID:       cart.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Username != "herve" || created.CartID != cart.ID {
		t.Fatalf("unexpected user %+v", created)
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Username != "herve" {
		t.Fatalf("unexpected user %+v", byID)
	}

	byName, err := repo.GetByUsername(ctx, "herve")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("mismatch: %+v vs %+v", byName, created)
	}

	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	carts := cartrepo.NewPostgres(pool)
	repo := NewPostgres(pool, nil)

	first, err := carts.Create(ctx)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	if _, err := repo.Create(ctx, CreateUserInput{Username: "herve", PasswordHash: "x", CartID: first.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second, err := carts.Create(ctx)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	if _, err := repo.Create(ctx, CreateUserInput{Username: "herve", PasswordHash: "y", CartID: second.ID}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
