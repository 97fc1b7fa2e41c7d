package routes

import (
	"github.com/AMiROH/bakery-api/controllers"
	"github.com/AMiROH/bakery-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", controllers.CreateOrder)
	server.GET("/order/:orderId", controllers.GetOrder)

	server.GET("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetOrders)
	server.PATCH("/order/:orderId/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
}
