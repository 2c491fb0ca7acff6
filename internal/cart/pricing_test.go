package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

func line(id string, price float64, qty int) domain.LineItem {
	return domain.LineItem{FoodID: id, UnitPrice: price, Quantity: qty, Variant: domain.VariantFull}
}

func TestSummarize_CountAndSubtotal(t *testing.T) {
	s := Summarize([]domain.LineItem{
		line("1", 12.99, 2),
		line("2", 8.99, 1),
		line("3", 3.99, 3),
	}, nil)

	assert.Equal(t, 6, s.Count)
	assert.Equal(t, 46.94, s.Subtotal)
}

func TestSummarize_EmptyCart(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0.0, s.Subtotal)
	assert.Equal(t, 0.0, s.Discount)
}

func TestSummarize_NoFloatDrift(t *testing.T) {
	// 0.10 * 3 drifts in binary floating point; decimals must not.
	s := Summarize([]domain.LineItem{line("1", 0.10, 3)}, nil)

	assert.Equal(t, 0.30, s.Subtotal)
}

func TestSummarize_DeliveryFeeBoundary(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		qty      int
		subtotal float64
		fee      float64
	}{
		{"below threshold", 10.00, 2, 20.00, 2.99},
		{"exactly 25.00 still pays the fee", 12.50, 2, 25.00, 2.99},
		{"just above threshold", 12.51, 2, 25.02, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize([]domain.LineItem{line("1", tt.price, tt.qty)}, nil)
			assert.Equal(t, tt.subtotal, s.Subtotal)
			assert.Equal(t, tt.fee, s.DeliveryFee)
		})
	}
}

func TestSummarize_TaxIsEightPercentOfSubtotal(t *testing.T) {
	s := Summarize([]domain.LineItem{line("1", 10.00, 1)}, nil)
	assert.Equal(t, 0.80, s.Tax)

	// Tax ignores the delivery fee and the discount.
	rule, err := Resolve("FASTBITE5")
	require.NoError(t, err)
	s = Summarize([]domain.LineItem{line("1", 10.00, 1)}, &rule)
	assert.Equal(t, 0.80, s.Tax)
}

func TestSummarize_DoubleBurgerScenario(t *testing.T) {
	s := Summarize([]domain.LineItem{line("1", 12.99, 2)}, nil)

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 25.98, s.Subtotal)
	assert.Equal(t, 0.0, s.DeliveryFee)
	assert.Equal(t, 2.08, s.Tax)
	assert.Equal(t, 28.06, s.Total)
}

func TestSummarize_PercentDiscount(t *testing.T) {
	rule, err := Resolve("WELCOME10")
	require.NoError(t, err)

	s := Summarize([]domain.LineItem{line("1", 10.00, 1)}, &rule)

	assert.Equal(t, 1.00, s.Discount)
	assert.Equal(t, 12.79, s.Total) // 10.00 + 2.99 + 0.80 - 1.00
}

func TestSummarize_DiscountClampedToTotal(t *testing.T) {
	rule, err := Resolve("FASTBITE5")
	require.NoError(t, err)

	// 1.00 + 2.99 + 0.08 = 4.07 < 5.00 flat discount
	s := Summarize([]domain.LineItem{line("1", 1.00, 1)}, &rule)

	assert.Equal(t, 4.07, s.Discount)
	assert.Equal(t, 0.0, s.Total)
}

func TestSummarize_Idempotent(t *testing.T) {
	items := []domain.LineItem{line("1", 12.99, 2), line("2", 8.99, 1)}
	rule, err := Resolve("WELCOME10")
	require.NoError(t, err)

	first := Summarize(items, &rule)
	second := Summarize(items, &rule)

	assert.Equal(t, first, second)
}

func TestTotalFor_PickupOmitsDeliveryFee(t *testing.T) {
	s := Summarize([]domain.LineItem{line("1", 10.00, 1)}, nil)
	require.Equal(t, 2.99, s.DeliveryFee)

	assert.Equal(t, 13.79, s.TotalFor(domain.DeliveryMethodDelivery))
	assert.Equal(t, 10.80, s.TotalFor(domain.DeliveryMethodPickup))
}

func TestForFulfillment_DeliveryIsUnchanged(t *testing.T) {
	rule, err := Resolve("WELCOME10")
	require.NoError(t, err)

	s := Summarize([]domain.LineItem{line("1", 10.00, 1)}, &rule)

	assert.Equal(t, s, s.ForFulfillment(domain.DeliveryMethodDelivery))
}

func TestForFulfillment_PickupBreakdownSumsToTotal(t *testing.T) {
	rule, err := Resolve("FASTBITE5")
	require.NoError(t, err)

	// The delivery-mode discount is clamped against a total that includes
	// the fee; pickup drops the fee, so the discount must be re-clamped or
	// the stored figures stop adding up.
	s := Summarize([]domain.LineItem{line("1", 1.00, 1)}, &rule)
	require.Equal(t, 4.07, s.Discount)

	pickup := s.ForFulfillment(domain.DeliveryMethodPickup)

	assert.Equal(t, 0.0, pickup.DeliveryFee)
	assert.Equal(t, 1.08, pickup.Discount)
	assert.Equal(t, 0.0, pickup.Total)
	assert.InDelta(t, pickup.Total, pickup.Subtotal+pickup.DeliveryFee+pickup.Tax-pickup.Discount, 1e-9)
}

func TestTotalFor_PickupNeverNegative(t *testing.T) {
	rule, err := Resolve("FASTBITE5")
	require.NoError(t, err)

	// Pickup drops the fee, so the clamped delivery discount can exceed
	// subtotal + tax.
	s := Summarize([]domain.LineItem{line("1", 1.00, 1)}, &rule)

	assert.Equal(t, 0.0, s.TotalFor(domain.DeliveryMethodPickup))
}
