package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the AMiROH Bakery API 🥐. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

MENU
- GET "/menu" - List available menu items (filters: category, featured)
- GET "/menu/{id}" - Get menu item by ID
- POST "/menu" - Create menu item (admin)
- PATCH "/menu/{id}" - Update menu item (admin)
- POST "/menu-images" - Upload menu item image (admin)

ORDER
- POST "/order" - Place a new order
- GET "/order/{orderId}" - Check an order and its line items
- GET "/admin/orders" - List all orders (admin)
- PATCH "/order/{orderId}/status" - Complete or cancel an order (admin)

REVIEWS
- GET "/reviews" - List reviews, newest first
- POST "/reviews" - Leave a review

AUTH
- POST "/auth/login" - Admin login`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
