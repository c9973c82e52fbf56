package models

import "time"

// Order represents a created delivery order. Orders are immutable once
// appended to a ledger; fulfillment progress is derived from CreatedAt by
// the logistics tracker rather than stored back onto the order.
type Order struct {
	ID                     int       `json:"id"`
	ItemName               string    `json:"item_name"`
	Quantity               int       `json:"quantity"`
	UnitPrice              float64   `json:"unit_price"`
	TotalPrice             float64   `json:"total_price"`
	DeliveryAddress        string    `json:"delivery_address"`
	Phone                  string    `json:"phone"`
	CreatedAt              time.Time `json:"created_at"`
	EstimatedDeliveryHours int       `json:"estimated_delivery_hours"`
}

// OrderStage represents the possible fulfillment stages of an order
type OrderStage string

const (
	StageConfirmed OrderStage = "confirmed"
	StageHarvested OrderStage = "harvested"
	StageSorted    OrderStage = "sorted"
	StageAtStation OrderStage = "at_station"
	StageDelivered OrderStage = "delivered"
)
