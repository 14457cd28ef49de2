package routes

import (
	controller "github.com/ungaaaabungaaa/yumyard-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/cart/:session_id", controller.GetCart())
	incomingRoutes.POST("/cart/:session_id/items", controller.AddCartItem())
	incomingRoutes.PATCH("/cart/:session_id/items/:menu_id", controller.UpdateCartItem())
	incomingRoutes.DELETE("/cart/:session_id/items/:menu_id", controller.RemoveCartItem())
	incomingRoutes.DELETE("/cart/:session_id", controller.ClearCart())
}
