package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCooking   OrderStatus = "cooking"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusCooking, OrderStatusDelivered:
		return true
	}
	return false
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// OrderLine is a cart line item frozen into a placed order.
type OrderLine struct {
	FoodID    string  `bson:"food_id" json:"food_id"`
	Name      string  `bson:"name" json:"name"`
	Variant   Variant `bson:"variant" json:"variant"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Customer struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	ZipCode   string `bson:"zip_code" json:"zip_code"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Order is a placed order with its totals snapshotted at placement time.
type Order struct {
	ID             string         `bson:"_id" json:"id"`
	ClientID       string         `bson:"client_id" json:"-"`
	Items          []OrderLine    `bson:"items" json:"items"`
	Customer       Customer       `bson:"customer" json:"customer"`
	DeliveryMethod DeliveryMethod `bson:"delivery_method" json:"delivery_method"`
	PaymentMethod  PaymentMethod  `bson:"payment_method" json:"payment_method"`
	Subtotal       float64        `bson:"subtotal" json:"subtotal"`
	DeliveryFee    float64        `bson:"delivery_fee" json:"delivery_fee"`
	Tax            float64        `bson:"tax" json:"tax"`
	Discount       float64        `bson:"discount" json:"discount"`
	PromoCode      string         `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	Total          float64        `bson:"total" json:"total"`
	Status         OrderStatus    `bson:"status" json:"status"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `bson:"updated_at" json:"updated_at"`
}
