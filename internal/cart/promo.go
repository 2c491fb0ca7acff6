package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownPromoCode = errors.New("unknown promo code")

type RuleKind string

const (
	RulePercent RuleKind = "percent"
	RuleFlat    RuleKind = "flat"
)

// Rule is a discount rule from the static promo table. Percent rules apply
// Value as a percentage of the subtotal, flat rules subtract Value outright.
type Rule struct {
	Code  string
	Kind  RuleKind
	Value decimal.Decimal
}

// The promo table is fixed at process start; codes are matched
// case-insensitively on the trimmed input.
var promoTable = map[string]Rule{
	"welcome10": {Code: "WELCOME10", Kind: RulePercent, Value: decimal.NewFromInt(10)},
	"fastbite5": {Code: "FASTBITE5", Kind: RuleFlat, Value: decimal.NewFromInt(5)},
}

// Resolve looks the user-entered code up in the promo table.
func Resolve(code string) (Rule, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	rule, ok := promoTable[normalized]
	if !ok {
		return Rule{}, ErrUnknownPromoCode
	}
	return rule, nil
}

// DiscountOn computes the unclamped discount amount against the given
// subtotal. Clamping against the order total is the aggregator's job.
func (r Rule) DiscountOn(subtotal decimal.Decimal) decimal.Decimal {
	switch r.Kind {
	case RulePercent:
		return subtotal.Mul(r.Value).Div(decimal.NewFromInt(100))
	case RuleFlat:
		return r.Value
	}
	return decimal.Zero
}
