package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/desuper666/Site-shop/controllers/order"
	"github.com/desuper666/Site-shop/middleware"
)

func SetupOrderRoutes(r *gin.Engine, s Services) {
	orders := r.Group("/user/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order from the cart
		orders.POST("", orderControllers.PlaceOrderHandler(s.Checkout))

		// Fetch the caller's orders, newest first
		orders.GET("", orderControllers.GetUserOrdersHandler(s.Store))

		// Fetch a single order
		orders.GET("/:order_id", orderControllers.GetOrderByIDHandler(s.Store))
	}

	// Websocket endpoint for real-time order updates (admin dashboard)
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
