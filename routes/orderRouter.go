package routes

import (
	controller "github.com/ungaaaabungaaa/yumyard-sub000/controllers"
	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"
	"github.com/ungaaaabungaaa/yumyard-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	// Customers create and track orders without a session.
	incomingRoutes.POST("/orders", controller.CreateOrder())
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder())

	staff := middleware.Authentication(helpers.RoleAdmin, helpers.RoleKitchen)
	incomingRoutes.GET("/orders", staff, controller.GetOrders())
	incomingRoutes.GET("/orders/table/:table_number", staff, controller.GetOrdersByTable())
	incomingRoutes.PATCH("/orders/:order_id/status", staff, controller.UpdateOrderStatus())
	incomingRoutes.PATCH("/orders/:order_id/payment",
		middleware.Authentication(helpers.RoleAdmin), controller.UpdateOrderPayment())
}
