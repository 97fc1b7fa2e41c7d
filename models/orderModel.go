package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"

	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

type Order struct {
	gorm.Model
	Number          string          `json:"number" gorm:"uniqueIndex;size:20"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   string          `json:"customerEmail"`
	DeliveryType    string          `json:"deliveryType"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CartSnapshot    datatypes.JSON  `json:"-"`
	Items           []OrderLineItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderLineItem struct {
	gorm.Model
	OrderID    int     `json:"orderId"`
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// IsTerminalStatus reports whether no further status transitions are allowed.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled
}
