package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/desuper666/Site-shop/controllers/cart"
	productcontroller "github.com/desuper666/Site-shop/controllers/product"
	promoControllers "github.com/desuper666/Site-shop/controllers/promo"
	"github.com/desuper666/Site-shop/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, s Services) {
	// Public catalog browsing
	r.GET("/products", productcontroller.GetProducts(s.Store))
	r.GET("/products/:id", productcontroller.GetProductByID(s.Store))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(s.Cart))               // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(s.Cart))              // POST /user/cart
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(s.Cart)) // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(s.Cart))          // DELETE /user/cart
		}

		// ──────────────── Promo Codes ────────────────
		userGroup.POST("/promo", promoControllers.ApplyPromoHandler(s.Promo)) // POST /user/promo
	}
}
