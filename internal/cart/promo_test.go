package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CaseInsensitiveAndTrimmed(t *testing.T) {
	for _, input := range []string{"WELCOME10", "welcome10", "  Welcome10  "} {
		rule, err := Resolve(input)
		require.NoError(t, err, input)
		assert.Equal(t, "WELCOME10", rule.Code)
		assert.Equal(t, RulePercent, rule.Kind)
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	_, err := Resolve("BOGUS50")
	assert.ErrorIs(t, err, ErrUnknownPromoCode)
}

func TestDiscountOn(t *testing.T) {
	subtotal := decimal.RequireFromString("10.00")

	welcome, err := Resolve("welcome10")
	require.NoError(t, err)
	assert.True(t, welcome.DiscountOn(subtotal).Equal(decimal.NewFromInt(1)))

	fastbite, err := Resolve("fastbite5")
	require.NoError(t, err)
	assert.True(t, fastbite.DiscountOn(subtotal).Equal(decimal.NewFromInt(5)))
}

func TestDiscount_ReplacedNotStacked(t *testing.T) {
	subtotal := decimal.RequireFromString("10.00")

	fastbite, err := Resolve("fastbite5")
	require.NoError(t, err)
	require.True(t, fastbite.DiscountOn(subtotal).Equal(decimal.NewFromInt(5)))

	// Applying a second valid code replaces the rule outright; the previous
	// five dollars do not linger.
	welcome, err := Resolve("welcome10")
	require.NoError(t, err)
	assert.True(t, welcome.DiscountOn(subtotal).Equal(decimal.NewFromInt(1)))
}
