package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/services"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.Is(err, services.ErrUserExists):
				c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
	}
}

// POST /auth/login
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"user_id":  user.ID,
			"username": user.Username,
		})
	}
}
