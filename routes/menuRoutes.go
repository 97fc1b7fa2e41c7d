package routes

import (
	"github.com/AMiROH/bakery-api/controllers"
	"github.com/AMiROH/bakery-api/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/menu/:id", controllers.GetMenuItem)

	server.POST("/menu", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateMenuItem)
	server.PATCH("/menu/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateMenuItem)
	server.POST("/menu-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadMenuImage)
}
