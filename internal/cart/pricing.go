package cart

import (
	"github.com/shopspring/decimal"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

var (
	freeDeliveryOver = decimal.NewFromInt(25)
	deliveryFee      = decimal.RequireFromString("2.99")
	taxRate          = decimal.RequireFromString("0.08")
)

// Summary is the derived order figures for a cart. It is recomputed from the
// line items and the active promo on every read and never stored on its own.
type Summary struct {
	Count       int     `json:"count"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// Summarize derives the order summary from the cart's line items and an
// optional active promo rule. All arithmetic runs in decimals and rounding to
// display precision happens once, on the output figures.
//
// The delivery fee is waived only when the subtotal strictly exceeds 25.00.
// Tax is 8% of the subtotal; neither the fee nor the discount is taxed. The
// discount is always recomputed against the current subtotal and clamped so
// the total can never go negative.
func Summarize(items []domain.LineItem, rule *Rule) Summary {
	count := 0
	subtotal := decimal.Zero
	for _, item := range items {
		count += item.Quantity
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	fee := deliveryFee
	if subtotal.GreaterThan(freeDeliveryOver) {
		fee = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	discount := decimal.Zero
	if rule != nil {
		discount = rule.DiscountOn(subtotal)
	}

	// Round each displayed figure, then combine the rounded figures so the
	// total always matches the printed breakdown.
	subtotal = subtotal.Round(2)
	fee = fee.Round(2)
	tax = tax.Round(2)
	discount = discount.Round(2)

	if max := subtotal.Add(fee).Add(tax); discount.GreaterThan(max) {
		discount = max
	}

	total := subtotal.Add(fee).Add(tax).Sub(discount)

	return Summary{
		Count:       count,
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: fee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Discount:    discount.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}
}

// ForFulfillment re-derives the figures for the chosen fulfillment mode.
// Delivery keeps the summary as is. Pickup drops the delivery fee from the
// sum entirely, while tax still applies; the discount is re-clamped against
// the smaller pickup total so the returned breakdown always sums to the
// amount due.
func (s Summary) ForFulfillment(method domain.DeliveryMethod) Summary {
	if method == domain.DeliveryMethodDelivery {
		return s
	}

	subtotal := decimal.NewFromFloat(s.Subtotal)
	tax := decimal.NewFromFloat(s.Tax)
	discount := decimal.NewFromFloat(s.Discount)
	if max := subtotal.Add(tax); discount.GreaterThan(max) {
		discount = max
	}
	total := subtotal.Add(tax).Sub(discount)

	return Summary{
		Count:       s.Count,
		Subtotal:    s.Subtotal,
		DeliveryFee: 0,
		Tax:         s.Tax,
		Discount:    discount.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}
}

// TotalFor is the checkout-page total. It intentionally diverges from the
// cart-page Total: the two formulas are kept separate on purpose.
func (s Summary) TotalFor(method domain.DeliveryMethod) float64 {
	return s.ForFulfillment(method).Total
}
