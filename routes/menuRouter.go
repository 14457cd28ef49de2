package routes

import (
	controller "github.com/ungaaaabungaaa/yumyard-sub000/controllers"
	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"
	"github.com/ungaaaabungaaa/yumyard-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	// Reads are public so the table QR pages can render the menu.
	incomingRoutes.GET("/menu", controller.GetMenuItems())
	incomingRoutes.GET("/menu/:menu_id", controller.GetMenuItem())
	incomingRoutes.GET("/menubycategory/:category_id", controller.GetMenuItemsByCategory())
	incomingRoutes.GET("/categories", controller.GetCategories())

	admin := middleware.Authentication(helpers.RoleAdmin)
	incomingRoutes.POST("/menu", admin, controller.CreateMenuItem())
	incomingRoutes.PATCH("/menu/:menu_id", admin, controller.UpdateMenuItem())
	incomingRoutes.DELETE("/menu/:menu_id", admin, controller.DeleteMenuItem())
	incomingRoutes.POST("/categories", admin, controller.CreateCategory())
	incomingRoutes.PATCH("/categories/:category_id", admin, controller.UpdateCategory())
	incomingRoutes.DELETE("/categories/:category_id", admin, controller.DeleteCategory())
}
