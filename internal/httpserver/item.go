package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront-api/internal/domain"

	"github.com/gin-gonic/gin"
)

func listItems(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getItemByID(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		item, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// getItemsByName maps both "no matches" and "lookup failure" to 404 for the
// client; the log line keeps the two cases distinguishable.
func getItemsByName(logger *log.Logger, svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		items, err := svc.FindByName(c.Request.Context(), name)
		if err != nil {
			logger.Printf("items by name %q: lookup failed: %v", name, err)
			c.JSON(http.StatusNotFound, gin.H{"error": "no items found"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no items found"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
