package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
)

type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	TableNumber int         `json:"table_number"`
	Status      OrderStatus `json:"status"`
	Total       int64       `json:"total"`
	Occurred    time.Time   `json:"occurred"`
}
