package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/events"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

// OrderEventPublisher pushes order events to the kitchen.
// Consumers define this interface; a nil publisher disables events.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event events.OrderPlaced) error
}

type OrderService struct {
	orders repository.OrderRepository
	carts  *CartService
	events OrderEventPublisher
	log    *slog.Logger
}

func NewOrderService(orders repository.OrderRepository, carts *CartService, publisher OrderEventPublisher, log *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		carts:  carts,
		events: publisher,
		log:    log,
	}
}

// PlaceOrderInput carries the checkout form fields.
type PlaceOrderInput struct {
	Customer       domain.Customer       `json:"customer"`
	DeliveryMethod domain.DeliveryMethod `json:"delivery_method"`
	PaymentMethod  domain.PaymentMethod  `json:"payment_method"`
}

func validateCheckout(in PlaceOrderInput) error {
	c := in.Customer
	switch {
	case !minLen(c.FirstName, 2):
		return invalidf("first name is required")
	case !minLen(c.LastName, 2):
		return invalidf("last name is required")
	case !validEmail(c.Email):
		return invalidf("invalid email address")
	case digitCount(c.Phone) < 10:
		return invalidf("phone number must be at least 10 digits")
	case !minLen(c.Address, 10):
		return invalidf("please enter a complete address")
	case !minLen(c.City, 2):
		return invalidf("city is required")
	case !minLen(c.ZipCode, 5):
		return invalidf("valid zip code is required")
	case !in.DeliveryMethod.Valid():
		return invalidf("please select delivery or pickup")
	case !in.PaymentMethod.Valid():
		return invalidf("please select a payment method")
	}
	return nil
}

// Place turns the client's cart into an order. Totals are recomputed
// server-side with the checkout formula for the chosen fulfillment mode.
// The cart is cleared only after the order is stored; any earlier failure
// leaves the cart and its active discount untouched so the client can retry.
func (s *OrderService) Place(ctx context.Context, clientID string, in PlaceOrderInput) (*domain.Order, error) {
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	c, summary := s.carts.Summary(ctx, clientID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Snapshot the figures for the chosen mode so the stored breakdown
	// always sums to the stored total.
	figures := summary.ForFulfillment(in.DeliveryMethod)

	lines := make([]domain.OrderLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, domain.OrderLine{
			FoodID:    item.FoodID,
			Name:      item.Name,
			Variant:   item.Variant,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order := &domain.Order{
		ID:             newOrderID(),
		ClientID:       clientID,
		Items:          lines,
		Customer:       in.Customer,
		DeliveryMethod: in.DeliveryMethod,
		PaymentMethod:  in.PaymentMethod,
		Subtotal:       figures.Subtotal,
		DeliveryFee:    figures.DeliveryFee,
		Tax:            figures.Tax,
		Discount:       figures.Discount,
		PromoCode:      c.PromoCode,
		Total:          figures.Total,
		Status:         domain.OrderStatusPending,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.publishPlaced(ctx, order)
	s.carts.Clear(ctx, clientID)

	return order, nil
}

func (s *OrderService) publishPlaced(ctx context.Context, order *domain.Order) {
	if s.events == nil {
		return
	}
	event := events.OrderPlaced{
		EventID:        uuid.NewString(),
		OrderID:        order.ID,
		ClientID:       order.ClientID,
		DeliveryMethod: string(order.DeliveryMethod),
		ItemCount:      len(order.Items),
		Total:          order.Total,
		PlacedAt:       order.CreatedAt,
	}
	if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
		s.log.Error("order placed event publish failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns orders newest first, optionally narrowed by status and a
// free-text query over order id, customer name and email.
func (s *OrderService) List(ctx context.Context, status, query string) ([]domain.Order, error) {
	var st domain.OrderStatus
	if status != "" && status != "all" {
		st = domain.OrderStatus(status)
		if !st.Valid() {
			return nil, invalidf("unknown order status %q", status)
		}
	}

	orders, err := s.orders.List(ctx, st)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders, nil
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		name := strings.ToLower(o.Customer.FirstName + " " + o.Customer.LastName)
		if strings.Contains(strings.ToLower(o.ID), q) ||
			strings.Contains(name, q) ||
			strings.Contains(strings.ToLower(o.Customer.Email), q) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	st := domain.OrderStatus(status)
	if !st.Valid() {
		return nil, invalidf("unknown order status %q", status)
	}

	if err := s.orders.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, id)
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderID produces the customer-facing order number: "FB" plus nine
// uppercase alphanumerics. The top-level source is safe under concurrent
// checkouts.
func newOrderID() string {
	var b strings.Builder
	b.WriteString("FB")
	for i := 0; i < 9; i++ {
		b.WriteByte(orderIDAlphabet[rand.Intn(len(orderIDAlphabet))])
	}
	return b.String()
}
