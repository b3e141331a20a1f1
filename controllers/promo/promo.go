package promoControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/services"
	"github.com/desuper666/Site-shop/store"
)

type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreatePromoRequest struct {
	Code            string    `json:"code" binding:"required,min=3,max=20"`
	DiscountPercent int       `json:"discount_percent" binding:"required,gte=1,lte=100"`
	ValidUntil      time.Time `json:"valid_until" binding:"required"`
}

// POST /user/promo
func ApplyPromoHandler(svc *services.PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var req ApplyPromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		applied, err := svc.Apply(c.Request.Context(), userID, req.Code)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPromo) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired promo code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply promo code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":          "Promo code applied",
			"code":             applied.Code,
			"discount_percent": applied.DiscountPercent,
		})
	}
}

// POST /admin/promos
func CreatePromoHandler(svc *services.PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo, err := svc.Create(c.Request.Context(), req.Code, req.DiscountPercent, req.ValidUntil)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
			return
		}
		c.JSON(http.StatusCreated, promo)
	}
}

// DELETE /admin/promos/:code
func DeactivatePromoHandler(svc *services.PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}

		if err := svc.Deactivate(c.Request.Context(), code); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate promo code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promo code deactivated"})
	}
}

// GET /admin/promos
func ListPromosHandler(svc *services.PromoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		promos, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
			return
		}
		c.JSON(http.StatusOK, promos)
	}
}
