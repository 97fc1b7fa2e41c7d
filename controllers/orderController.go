package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AMiROH/bakery-api/initializers"
	"github.com/AMiROH/bakery-api/models"
	"github.com/AMiROH/bakery-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type CreateOrderInput struct {
	OrderItems      []OrderItemInput `json:"order_items"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerEmail   string           `json:"customer_email"`
	DeliveryType    string           `json:"delivery_type"`
	DeliveryAddress string           `json:"delivery_address"`
}

// respondWithOrderError maps the domain error taxonomy onto HTTP statuses.
func respondWithOrderError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var persistenceErr *models.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"ok":     false,
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"ok": false, "error": notFoundErr.Error()})
	case errors.As(err, &persistenceErr):
		log.Println("Persistence error:", persistenceErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to save order"})
	default:
		log.Println("Unexpected error:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Internal server error"})
	}
}

func validateOrderInput(input CreateOrderInput) *models.ValidationError {
	validationErr := &models.ValidationError{}

	if len(input.OrderItems) == 0 {
		validationErr.Add("order_items", "at least one item is required")
	}
	for i, item := range input.OrderItems {
		if item.MenuItemID <= 0 {
			validationErr.Add("order_items["+strconv.Itoa(i)+"].menu_item_id", "must be a positive integer")
		}
		if item.Quantity <= 0 {
			validationErr.Add("order_items["+strconv.Itoa(i)+"].quantity", "must be a positive integer")
		}
	}

	if strings.TrimSpace(input.CustomerName) == "" {
		validationErr.Add("customer_name", "is required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		validationErr.Add("customer_phone", "is required")
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		validationErr.Add("customer_email", "is required")
	} else if !strings.Contains(input.CustomerEmail, "@") {
		validationErr.Add("customer_email", "must be a valid email address")
	}

	switch input.DeliveryType {
	case models.DeliveryTypePickup:
	case models.DeliveryTypeDelivery:
		if strings.TrimSpace(input.DeliveryAddress) == "" {
			validationErr.Add("delivery_address", "is required for delivery orders")
		}
	default:
		validationErr.Add("delivery_type", "must be 'pickup' or 'delivery'")
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}

// priceOrder resolves every cart line against the current catalog. Unit prices
// are snapshotted from the catalog here, never taken from the client.
func priceOrder(items []OrderItemInput) ([]models.OrderLineItem, float64, error) {
	validationErr := &models.ValidationError{}
	lines := make([]models.OrderLineItem, 0, len(items))
	var total float64

	for i, item := range items {
		var menuItem models.MenuItem
		if err := initializers.DB.First(&menuItem, item.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, &models.NotFoundError{Resource: "menu item", ID: item.MenuItemID}
			}
			return nil, 0, &models.PersistenceError{Op: "lookup menu item", Err: err}
		}
		if !menuItem.Available {
			validationErr.Add("order_items["+strconv.Itoa(i)+"].menu_item_id", menuItem.Name+" is not available")
			continue
		}

		lines = append(lines, models.OrderLineItem{
			MenuItemID: int(menuItem.ID),
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   item.Quantity,
		})
		total += menuItem.Price * float64(item.Quantity)
	}

	if validationErr.HasErrors() {
		return nil, 0, validationErr
	}
	return lines, total, nil
}

func newOrderNumber() string {
	return "BKY-" + strings.ToUpper(uuid.NewString()[:8])
}

// Send an order confirmation email to the customer.
func sendOrderConfirmationEmail(order models.Order) {
	if os.Getenv("FROM_EMAIL") == "" {
		return
	}

	emailData := utils.EmailData{
		Name:        order.CustomerName,
		Message:     "Thank you for your order! We are getting it ready.",
		OrderNumber: order.Number,
		Total:       fmt.Sprintf("%.2f", order.Total),
		LogoURL:     "https://www.amiroh-bakery.shop/images/logo.png",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendEmail(order.CustomerEmail, "Your Bakery Order "+order.Number, emailData, templatePath); err != nil {
		log.Printf("Failed to send confirmation email for order %d: %v", order.ID, err)
	}
}

func CreateOrder(ctx *gin.Context) {
	var input CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body"})
		return
	}

	// All validation happens before any row is written.
	if validationErr := validateOrderInput(input); validationErr != nil {
		respondWithOrderError(ctx, validationErr)
		return
	}

	lines, total, err := priceOrder(input.OrderItems)
	if err != nil {
		respondWithOrderError(ctx, err)
		return
	}

	snapshot, err := json.Marshal(input.OrderItems)
	if err != nil {
		respondWithOrderError(ctx, &models.PersistenceError{Op: "encode cart snapshot", Err: err})
		return
	}

	order := models.Order{
		Number:          newOrderNumber(),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DeliveryType:    input.DeliveryType,
		DeliveryAddress: input.DeliveryAddress,
		Total:           total,
		Status:          models.OrderStatusProcessing,
		CartSnapshot:    snapshot,
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		respondWithOrderError(ctx, &models.PersistenceError{Op: "create order", Err: err})
		return
	}

	for _, line := range lines {
		line.OrderID = int(order.ID)
		if err := tx.Create(&line).Error; err != nil {
			tx.Rollback()
			respondWithOrderError(ctx, &models.PersistenceError{Op: "create order line item", Err: err})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		respondWithOrderError(ctx, &models.PersistenceError{Op: "commit order", Err: err})
		return
	}

	// Best effort: the order is committed, notification failures only get logged.
	go utils.NotifyNewOrder(order)
	go sendOrderConfirmationEmail(order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"ok":           true,
		"order_id":     order.ID,
		"order_number": order.Number,
		"total":        order.Total,
	})
}

func GetOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("Items").First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if orderStatusData.Status != models.OrderStatusCompleted && orderStatusData.Status != models.OrderStatusCancelled {
		sendErrorResponse(ctx, http.StatusBadRequest, "Status must be 'Completed' or 'Cancelled'")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	// Completed and Cancelled are terminal.
	if models.IsTerminalStatus(order.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is already "+order.Status)
		return
	}

	if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}
