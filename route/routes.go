package route

import (
	"foodcart/auth"
	"foodcart/controller"
	"foodcart/utils"

	"github.com/gin-gonic/gin"
)

func Register(router *gin.Engine, ctl *controller.Controller, authHandler *auth.Handler, jwtSecret string) {
	api := router.Group("/api")
	{
		api.GET("/products", ctl.ListProducts)
		api.GET("/banners", ctl.ListBanners)
		api.POST("/orders", ctl.CreateOrder)
	}

	router.POST("/staff/auth/login", authHandler.Login)
	router.POST("/staff/auth/refresh", authHandler.Refresh)

	staff := router.Group("/staff")
	staff.Use(utils.StaffMiddleware(jwtSecret))
	{
		staff.GET("/orders", ctl.ListOrders)
		staff.PUT("/orders/:id", ctl.UpdateOrder)
		staff.GET("/products", ctl.ProductAvailability)
		staff.GET("/restaurants", ctl.ListRestaurants)
		staff.POST("/menu/import", ctl.ImportMenu)
	}
}
