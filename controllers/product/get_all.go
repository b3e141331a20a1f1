package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/store"
)

// GetProducts lists the catalog with optional search and price filters.
// Query params: search, min_price, max_price.
func GetProducts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{Search: c.Query("search")}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}

		products, err := st.ListProducts(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
