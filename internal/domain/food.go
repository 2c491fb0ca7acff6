package domain

import "time"

// Category groups food items on the menu. Slug is the URL-safe identifier the
// storefront filters by.
type Category struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Price holds the per-variant prices of a food item. Half is optional: some
// items are sold full-size only.
type Price struct {
	Half *float64 `bson:"half,omitempty" json:"half,omitempty"`
	Full float64  `bson:"full" json:"full"`
}

// ForVariant returns the price of the given variant, or false when the item
// is not sold in that size.
func (p Price) ForVariant(v Variant) (float64, bool) {
	switch v {
	case VariantHalf:
		if p.Half == nil {
			return 0, false
		}
		return *p.Half, true
	case VariantFull:
		return p.Full, true
	}
	return 0, false
}

type FoodItem struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Price       Price     `bson:"price" json:"price"`
	Image       string    `bson:"image" json:"image"`
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
