package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/desuper666/Site-shop/services"
	"github.com/desuper666/Site-shop/store"
)

func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(uint), true
}

// POST /user/orders
func PlaceOrderHandler(svc *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req services.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is required"})
			return
		}

		order, err := svc.PlaceOrder(c.Request.Context(), userID, req)
		if err != nil {
			var vErr *services.ValidationError
			var stockErr *services.InsufficientStockError
			switch {
			case errors.Is(err, services.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{
					"error":      stockErr.Error(),
					"product_id": stockErr.ProductID,
				})
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		orders, err := st.ListOrders(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:order_id
func GetOrderByIDHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := st.GetOrder(c.Request.Context(), userID, uint(orderID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
