package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the base of every field validation failure; wrap it
	// with the user-facing message.
	ErrValidation = errors.New("validation failed")

	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrUnpricedVariant  = errors.New("item is not sold in that size")
	ErrFoodUnavailable  = errors.New("item is currently unavailable")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
