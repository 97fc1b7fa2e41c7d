package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/AMiROH/bakery-api/initializers"
	"github.com/AMiROH/bakery-api/middlewares"
	"github.com/AMiROH/bakery-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points initializers.DB at a fresh in-memory SQLite database.
// A single connection keeps concurrent transactions serialized the same way
// the production database would.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}, &models.OrderLineItem{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	initializers.DB = db
	t.Cleanup(func() {
		sqlDB.Close()
	})
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()

	server.GET("/", GetHome)
	server.POST("/auth/login", Login)

	server.GET("/menu", GetMenu)
	server.GET("/menu/:id", GetMenuItem)
	server.POST("/menu", middlewares.RequireAuth(), middlewares.RequireAdmin(), CreateMenuItem)
	server.PATCH("/menu/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), UpdateMenuItem)

	server.POST("/order", CreateOrder)
	server.GET("/order/:orderId", GetOrder)
	server.GET("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin(), GetOrders)
	server.PATCH("/order/:orderId/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), UpdateOrderStatus)

	server.POST("/reviews", CreateReview)
	server.GET("/reviews", GetReviews)

	return server
}

func performJSON(t *testing.T, server *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
	return body
}

func seedMenuItem(t *testing.T, name string, price float64, category string, available bool) models.MenuItem {
	t.Helper()

	item := models.MenuItem{
		Name:      name,
		Price:     price,
		Category:  category,
		Available: available,
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	// gorm's default:true replaces a zero-valued false on insert, so set the
	// flag explicitly after creation.
	if err := initializers.DB.Model(&item).Update("available", available).Error; err != nil {
		t.Fatalf("failed to set availability: %v", err)
	}
	return item
}

func adminToken(t *testing.T) string {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := generateJWT(models.User{Fullname: "Test Admin", Email: "admin@test.local", Role: "admin"})
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	if err := initializers.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func validOrderBody(items []map[string]any) map[string]any {
	return map[string]any{
		"order_items":    items,
		"customer_name":  "Nok",
		"customer_phone": "081-234-5678",
		"customer_email": "nok@example.com",
		"delivery_type":  "pickup",
	}
}
