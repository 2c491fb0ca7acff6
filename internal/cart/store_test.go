package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

func burger(qty int) domain.LineItem {
	return domain.LineItem{
		FoodID:    "1",
		Name:      "Classic Burger",
		UnitPrice: 12.99,
		Quantity:  qty,
		Variant:   domain.VariantFull,
		Image:     "https://example.com/burger.jpg",
	}
}

func TestAdd_MergesSameIdentity(t *testing.T) {
	c := &domain.Cart{}

	require.NoError(t, Add(c, burger(1)))
	require.NoError(t, Add(c, burger(2)))
	require.NoError(t, Add(c, burger(3)))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 6, c.Items[0].Quantity)
}

func TestAdd_DifferentVariantIsSeparateLine(t *testing.T) {
	c := &domain.Cart{}

	full := burger(1)
	half := burger(1)
	half.Variant = domain.VariantHalf
	half.UnitPrice = 8.99

	require.NoError(t, Add(c, full))
	require.NoError(t, Add(c, half))

	require.Len(t, c.Items, 2)
	assert.Equal(t, domain.VariantFull, c.Items[0].Variant)
	assert.Equal(t, domain.VariantHalf, c.Items[1].Variant)
}

func TestAdd_MergeKeepsCapturedPrice(t *testing.T) {
	c := &domain.Cart{}

	require.NoError(t, Add(c, burger(1)))

	repriced := burger(1)
	repriced.UnitPrice = 15.99
	require.NoError(t, Add(c, repriced))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 12.99, c.Items[0].UnitPrice)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	c := &domain.Cart{}

	assert.ErrorIs(t, Add(c, burger(0)), ErrInvalidQuantity)
	assert.ErrorIs(t, Add(c, burger(-1)), ErrInvalidQuantity)
	assert.Empty(t, c.Items)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := &domain.Cart{}

	first := burger(1)
	second := burger(1)
	second.FoodID = "2"
	third := burger(1)
	third.FoodID = "3"

	require.NoError(t, Add(c, first))
	require.NoError(t, Add(c, second))
	require.NoError(t, Add(c, third))
	require.NoError(t, Add(c, second)) // merge must not reorder

	require.Len(t, c.Items, 3)
	assert.Equal(t, "1", c.Items[0].FoodID)
	assert.Equal(t, "2", c.Items[1].FoodID)
	assert.Equal(t, "3", c.Items[2].FoodID)
}

func TestSetQuantity_Overwrites(t *testing.T) {
	c := &domain.Cart{}
	require.NoError(t, Add(c, burger(2)))

	SetQuantity(c, "1", domain.VariantFull, 7)

	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestSetQuantity_ZeroBehavesLikeRemove(t *testing.T) {
	a := &domain.Cart{}
	b := &domain.Cart{}
	require.NoError(t, Add(a, burger(2)))
	require.NoError(t, Add(b, burger(2)))

	SetQuantity(a, "1", domain.VariantFull, 0)
	Remove(b, "1", domain.VariantFull)

	assert.Equal(t, a.Items, b.Items)
	assert.Empty(t, a.Items)
}

func TestSetQuantity_AbsentIdentityDoesNotCreate(t *testing.T) {
	c := &domain.Cart{}
	require.NoError(t, Add(c, burger(1)))

	SetQuantity(c, "missing", domain.VariantFull, 5)
	SetQuantity(c, "1", domain.VariantHalf, 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemove_AbsentIdentityIsNoOp(t *testing.T) {
	c := &domain.Cart{}
	require.NoError(t, Add(c, burger(1)))

	Remove(c, "missing", domain.VariantFull)
	Remove(c, "1", domain.VariantHalf)

	assert.Len(t, c.Items, 1)
}

func TestClear_DropsItemsAndPromo(t *testing.T) {
	c := &domain.Cart{PromoCode: "WELCOME10"}
	require.NoError(t, Add(c, burger(3)))

	Clear(c)

	assert.Empty(t, c.Items)
	assert.Empty(t, c.PromoCode)
}
