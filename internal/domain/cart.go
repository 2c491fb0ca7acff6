package domain

import "time"

// Variant is the size selector distinguishing the two priced versions of a
// food item. Together with the food id it forms the identity of a line item.
type Variant string

const (
	VariantHalf Variant = "half"
	VariantFull Variant = "full"
)

func (v Variant) Valid() bool {
	return v == VariantHalf || v == VariantFull
}

// LineItem is one (food item, variant) entry in a cart. Name, price and image
// are captured at add-time and never re-fetched from the catalog.
type LineItem struct {
	FoodID    string  `bson:"food_id" json:"food_id"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Variant   Variant `bson:"variant" json:"variant"`
	Image     string  `bson:"image" json:"image"`
}

// Matches reports whether the line item carries the given identity key.
func (li LineItem) Matches(foodID string, variant Variant) bool {
	return li.FoodID == foodID && li.Variant == variant
}

// Cart is the ordered line-item collection for one client device, mirrored in
// the carts collection under a unique client id. PromoCode holds the active
// promo so the discount survives reloads.
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"-"`
	ClientID  string     `bson:"client_id" json:"client_id"`
	Items     []LineItem `bson:"items" json:"items"`
	PromoCode string     `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
