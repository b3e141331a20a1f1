package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/desuper666/Site-shop/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, s Services) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.RegisterHandler(s.Auth))
		authGroup.POST("/login", authControllers.LoginHandler(s.Auth))
	}
}
