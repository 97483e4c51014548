package httpserver

import (
	"context"
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"

	"github.com/gin-gonic/gin"
)

// modifyCart serves both addToCart and removeFromCart; the two endpoints
// differ only in which service method they call.
func modifyCart(op func(ctx context.Context, in cartsvc.ModifyInput) (*domain.Cart, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.ModifyInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		cart, err := op(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user or item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
