package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront-api/internal/domain"
	usersvc "storefront-api/internal/service/user"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func getUserByID(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		u, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func getUserByUsername(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetByUsername(c.Request.Context(), c.Param("username"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func createUser(logger *log.Logger, svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, usersvc.ErrInvalidPassword):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
			default:
				logger.Printf("create user %q: %v", in.Username, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func loginUser(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		token, ttl, err := svc.Login(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			if errors.Is(err, usersvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     token,
			"tokenType": "Bearer",
			"expiresIn": ttl,
		})
	}
}
