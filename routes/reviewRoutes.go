package routes

import (
	"github.com/AMiROH/bakery-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(server *gin.Engine) {
	server.POST("/reviews", controllers.CreateReview)
	server.GET("/reviews", controllers.GetReviews)
}
