package events

import "time"

const (
	EventsExchange        = "fastbite.events"
	OrderPlacedRoutingKey = "order.placed.v1"
)

// OrderPlaced is published to the kitchen exchange after an order is stored.
type OrderPlaced struct {
	EventID        string    `json:"event_id"`
	OrderID        string    `json:"order_id"`
	ClientID       string    `json:"client_id"`
	DeliveryMethod string    `json:"delivery_method"`
	ItemCount      int       `json:"item_count"`
	Total          float64   `json:"total"`
	PlacedAt       time.Time `json:"placed_at"`
}
