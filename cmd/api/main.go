package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-api/internal/auth"
	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/httpserver"
	cartrepo "storefront-api/internal/repository/cart"
	itemrepo "storefront-api/internal/repository/item"
	orderrepo "storefront-api/internal/repository/order"
	userrepo "storefront-api/internal/repository/user"
	cartsvc "storefront-api/internal/service/cart"
	itemsvc "storefront-api/internal/service/item"
	ordersvc "storefront-api/internal/service/order"
	usersvc "storefront-api/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	userRepo := userrepo.NewPostgres(dbpool, logger)
	itemRepo := itemrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)

	userService := usersvc.New(userRepo, cartRepo, issuer, logger)
	itemService := itemsvc.New(itemRepo)
	cartService := cartsvc.New(userRepo, itemRepo, cartRepo)
	orderService := ordersvc.New(userRepo, cartRepo, orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:  userService,
		ItemSvc:  itemService,
		CartSvc:  cartService,
		OrderSvc: orderService,
		Verifier: verifier,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
