package routes

import (
	controller "github.com/ungaaaabungaaa/yumyard-sub000/controllers"
	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"
	"github.com/ungaaaabungaaa/yumyard-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
	incomingRoutes.POST("/users/logout", controller.Logout())
	incomingRoutes.POST("/otp/send", controller.SendOTP())
	incomingRoutes.POST("/otp/verify", controller.VerifyOTP())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())

	admin := middleware.Authentication(helpers.RoleAdmin)
	incomingRoutes.GET("/users", admin, controller.GetUsers())
	incomingRoutes.GET("/users/:user_id", admin, controller.GetUser())
}
