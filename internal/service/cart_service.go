package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/cart"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

// CartService owns the cart of each client device: it loads the durable
// mirror, runs the cart engine's mutations against it and writes it back.
// Mirror writes are best-effort; the mutated cart is returned to the caller
// whether or not the write landed, so a storage hiccup never loses the
// user's in-flight session.
type CartService struct {
	carts repository.CartRepository
	foods repository.FoodRepository
	log   *slog.Logger
}

func NewCartService(carts repository.CartRepository, foods repository.FoodRepository, log *slog.Logger) *CartService {
	return &CartService{carts: carts, foods: foods, log: log}
}

// Get rehydrates the client's cart. An absent, unreadable or malformed
// mirror yields an empty cart, never an error.
func (s *CartService) Get(ctx context.Context, clientID string) *domain.Cart {
	c, err := s.carts.Get(ctx, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			s.log.Warn("cart load failed, starting empty", "client_id", clientID, "error", err)
		}
		return &domain.Cart{ClientID: clientID}
	}
	return c
}

// AddItem resolves the food item from the catalog, captures its price for
// the requested variant and merges it into the cart.
func (s *CartService) AddItem(ctx context.Context, clientID, foodID string, variant domain.Variant, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}
	if !variant.Valid() {
		return nil, invalidf("variant must be %q or %q", domain.VariantHalf, domain.VariantFull)
	}

	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !food.IsAvailable {
		return nil, ErrFoodUnavailable
	}
	price, ok := food.Price.ForVariant(variant)
	if !ok {
		return nil, ErrUnpricedVariant
	}

	c := s.Get(ctx, clientID)
	if err := cart.Add(c, domain.LineItem{
		FoodID:    food.ID,
		Name:      food.Name,
		UnitPrice: price,
		Quantity:  quantity,
		Variant:   variant,
		Image:     food.Image,
	}); err != nil {
		return nil, err
	}

	s.persist(ctx, c)
	return c, nil
}

// SetQuantity overwrites the quantity of a line item; zero or less removes
// it. An absent identity is a no-op.
func (s *CartService) SetQuantity(ctx context.Context, clientID, foodID string, variant domain.Variant, quantity int) *domain.Cart {
	c := s.Get(ctx, clientID)
	cart.SetQuantity(c, foodID, variant, quantity)
	s.persist(ctx, c)
	return c
}

func (s *CartService) RemoveItem(ctx context.Context, clientID, foodID string, variant domain.Variant) *domain.Cart {
	c := s.Get(ctx, clientID)
	cart.Remove(c, foodID, variant)
	s.persist(ctx, c)
	return c
}

// Clear empties the cart and drops its durable mirror.
func (s *CartService) Clear(ctx context.Context, clientID string) *domain.Cart {
	if err := s.carts.Delete(ctx, clientID); err != nil {
		s.log.Warn("cart mirror delete failed", "client_id", clientID, "error", err)
	}
	return &domain.Cart{ClientID: clientID}
}

// ApplyPromo resolves the code against the promo table and stores it on the
// cart, replacing any previously active code. An unknown code leaves the
// active discount untouched.
func (s *CartService) ApplyPromo(ctx context.Context, clientID, code string) (*domain.Cart, error) {
	rule, err := cart.Resolve(code)
	if err != nil {
		return nil, ErrInvalidPromoCode
	}

	c := s.Get(ctx, clientID)
	c.PromoCode = rule.Code
	s.persist(ctx, c)
	return c, nil
}

func (s *CartService) RemovePromo(ctx context.Context, clientID string) *domain.Cart {
	c := s.Get(ctx, clientID)
	c.PromoCode = ""
	s.persist(ctx, c)
	return c
}

// Summary recomputes the derived figures from the current cart. The discount
// is always re-derived against the current subtotal; nothing is locked in
// from apply-time.
func (s *CartService) Summary(ctx context.Context, clientID string) (*domain.Cart, cart.Summary) {
	c := s.Get(ctx, clientID)
	return c, summarize(c)
}

// SummaryOf derives the figures for a cart the caller already holds, without
// touching storage.
func (s *CartService) SummaryOf(c *domain.Cart) cart.Summary {
	return summarize(c)
}

func summarize(c *domain.Cart) cart.Summary {
	var rule *cart.Rule
	if c.PromoCode != "" {
		if r, err := cart.Resolve(c.PromoCode); err == nil {
			rule = &r
		}
	}
	return cart.Summarize(c.Items, rule)
}

func (s *CartService) persist(ctx context.Context, c *domain.Cart) {
	if err := s.carts.Upsert(ctx, c); err != nil {
		s.log.Warn("cart persist failed", "client_id", c.ClientID, "error", err)
	}
}
