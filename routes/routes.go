package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/services"
	"github.com/desuper666/Site-shop/store"
)

// Services bundles everything the route groups need.
type Services struct {
	Store    store.Store
	Auth     *services.AuthService
	Cart     *services.CartService
	Promo    *services.PromoService
	Checkout *services.CheckoutService
}

// SetupRoutes is the single entry-point that wires up Auth, User, Admin and
// Order route groups.
func SetupRoutes(r *gin.Engine, s Services) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, s)

	// User routes (JWT-protected)
	SetupUserRoutes(r, s)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, s)

	// Order routes
	SetupOrderRoutes(r, s)
}
