package utils

import (
	"log"
	"os"
	"time"

	"github.com/AMiROH/bakery-api/models"
	"github.com/go-resty/resty/v2"
)

// NotifyNewOrder pings the shop's webhook (Slack/Discord style) about a freshly
// committed order. Failures are logged only, the order is already saved.
func NotifyNewOrder(order models.Order) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]any{
		"order_id":      order.ID,
		"order_number":  order.Number,
		"customer_name": order.CustomerName,
		"delivery_type": order.DeliveryType,
		"total":         order.Total,
		"placed_at":     order.CreatedAt,
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Order webhook failed for order %d: %v", order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook for order %d returned status %d: %s", order.ID, resp.StatusCode(), string(resp.Body()))
	}
}
