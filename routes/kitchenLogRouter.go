package routes

import (
	controller "github.com/ungaaaabungaaa/yumyard-sub000/controllers"
	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"
	"github.com/ungaaaabungaaa/yumyard-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func KitchenLogRoutes(incomingRoutes *gin.Engine) {
	staff := middleware.Authentication(helpers.RoleAdmin, helpers.RoleKitchen)
	incomingRoutes.GET("/kitchenlogs", staff, controller.GetKitchenLogs())
	incomingRoutes.GET("/kitchenlogs/:order_id", staff, controller.GetKitchenLogsByOrder())
}
