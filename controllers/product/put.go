package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/store"
)

type UpdateProductRequest struct {
	NameEN        *string  `json:"name_en"`
	NameRU        *string  `json:"name_ru"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionRU *string  `json:"description_ru"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
	Stock         *int     `json:"stock"`
}

// UpdateProduct applies a partial update to a product (admin).
func UpdateProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Price != nil && *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
			return
		}

		product, err := st.GetProduct(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if req.NameEN != nil {
			product.NameEN = *req.NameEN
		}
		if req.NameRU != nil {
			product.NameRU = *req.NameRU
		}
		if req.DescriptionEN != nil {
			product.DescriptionEN = *req.DescriptionEN
		}
		if req.DescriptionRU != nil {
			product.DescriptionRU = *req.DescriptionRU
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
			if product.Stock > 0 {
				product.RestockAt = nil
			}
		}
		product.UpdatedAt = time.Now()

		if err := st.SaveProduct(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
