package httpserver

import (
	"context"
	"errors"
	"log"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"
	usersvc "storefront-api/internal/service/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserService covers the user handler's needs.
type UserService interface {
	Create(ctx context.Context, in usersvc.CreateInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, int, error)
}

// ItemService covers catalog lookups.
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
}

// CartService covers cart mutation.
type CartService interface {
	Add(ctx context.Context, in cartsvc.ModifyInput) (*domain.Cart, error)
	Remove(ctx context.Context, in cartsvc.ModifyInput) (*domain.Cart, error)
}

// OrderService covers order submission and history.
type OrderService interface {
	Submit(ctx context.Context, username string) (*domain.Order, error)
	History(ctx context.Context, username string) ([]domain.Order, error)
}

// TokenVerifier validates bearer tokens for the auth middleware.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	UserSvc  UserService
	ItemSvc  ItemService
	CartSvc  CartService
	OrderSvc OrderService
	Verifier TokenVerifier
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.UserSvc == nil || deps.ItemSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}
	if deps.Verifier == nil {
		return nil, errors.New("httpserver: missing token verifier")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(bearerAuth(logger, deps.Verifier))

	user := api.Group("/user")
	user.GET("/id/:id", getUserByID(deps.UserSvc))
	user.GET("/:username", getUserByUsername(deps.UserSvc))
	user.POST("/create", createUser(logger, deps.UserSvc))
	user.POST("/login", loginUser(deps.UserSvc))

	api.GET("/item", listItems(deps.ItemSvc))
	api.GET("/item/:id", getItemByID(deps.ItemSvc))
	api.GET("/item/name/:name", getItemsByName(logger, deps.ItemSvc))

	cart := api.Group("/cart")
	cart.POST("/addToCart", modifyCart(deps.CartSvc.Add))
	cart.POST("/removeFromCart", modifyCart(deps.CartSvc.Remove))

	order := api.Group("/order")
	order.POST("/submit/:username", submitOrder(logger, deps.OrderSvc))
	order.GET("/history/:username", orderHistory(deps.OrderSvc))

	return router, nil
}
