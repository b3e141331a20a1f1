package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/store"
)

type CreateProductRequest struct {
	NameEN        string  `json:"name_en" binding:"required"`
	NameRU        string  `json:"name_ru" binding:"required"`
	DescriptionEN string  `json:"description_en"`
	DescriptionRU string  `json:"description_ru"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Image         string  `json:"image"`
	Stock         int     `json:"stock" binding:"gte=0"`
}

// CreateProduct adds a catalog entry (admin).
func CreateProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			NameEN:        req.NameEN,
			NameRU:        req.NameRU,
			DescriptionEN: req.DescriptionEN,
			DescriptionRU: req.DescriptionRU,
			Price:         req.Price,
			Image:         req.Image,
			Stock:         req.Stock,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := st.CreateProduct(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
