// Package cart implements the cart engine: line-item mutations over a cart,
// the pricing aggregation and promo code resolution. Everything here is pure
// state manipulation; persistence lives in the repository layer.
package cart

import (
	"errors"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Add merges the item into the cart. An item with the same (food id, variant)
// identity has its quantity incremented; every other field of the existing
// entry, the captured price included, stays as it was. New identities are
// appended, preserving insertion order.
func Add(c *domain.Cart, item domain.LineItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].Matches(item.FoodID, item.Variant) {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// Remove deletes the matching line item. Removing an absent identity is a
// no-op, not an error.
func Remove(c *domain.Cart, foodID string, variant domain.Variant) {
	for i := range c.Items {
		if c.Items[i].Matches(foodID, variant) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of the matching line item. A quantity
// of zero or less behaves exactly like Remove. When no entry matches nothing
// happens; SetQuantity never creates a line item.
func SetQuantity(c *domain.Cart, foodID string, variant domain.Variant, quantity int) {
	if quantity <= 0 {
		Remove(c, foodID, variant)
		return
	}
	for i := range c.Items {
		if c.Items[i].Matches(foodID, variant) {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart and drops the active promo code.
func Clear(c *domain.Cart) {
	c.Items = nil
	c.PromoCode = ""
}
