package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/desuper666/Site-shop/controllers/product"
	promoControllers "github.com/desuper666/Site-shop/controllers/promo"
	"github.com/desuper666/Site-shop/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, s Services) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(s.Store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(s.Store))
			productAdmin.GET("", productcontroller.GetProducts(s.Store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(s.Store))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(s.Store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s.Store))
		}

		// ─────────── Promo Code Management ───────────
		promoAdmin := adminGroup.Group("/promos")
		{
			promoAdmin.POST("", promoControllers.CreatePromoHandler(s.Promo))
			promoAdmin.GET("", promoControllers.ListPromosHandler(s.Promo))
			promoAdmin.DELETE("/:code", promoControllers.DeactivatePromoHandler(s.Promo))
		}
	}
}
