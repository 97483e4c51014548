package httpserver

import (
	"errors"
	"log"
	"net/http"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"

	"github.com/gin-gonic/gin"
)

func submitOrder(logger *log.Logger, svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if id, ok := auth.IdentityFrom(c.Request.Context()); ok && id.Username != username {
			logger.Printf("order submit: caller %q submitting for %q", id.Username, username)
		}
		order, err := svc.Submit(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			logger.Printf("order submit %q: %v", username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func orderHistory(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.History(c.Request.Context(), c.Param("username"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
