package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/cart"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddItemRequestDTO struct {
	FoodID   string `json:"food_id"`
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type ApplyPromoRequestDTO struct {
	Code string `json:"code"`
}

type CartResponseDTO struct {
	Cart    *domain.Cart `json:"cart"`
	Summary cart.Summary `json:"summary"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, c *domain.Cart, s cart.Summary) {
	respondJSON(w, status, CartResponseDTO{Cart: c, Summary: s})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	c, summary := h.carts.Summary(r.Context(), clientID)
	h.respondCart(w, http.StatusOK, c, summary)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.FoodID == "" {
		respondError(w, http.StatusBadRequest, "invalid_food_id", "food_id is required")
		return
	}
	variant, ok := parseVariant(req.Variant)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_variant", `variant must be "half" or "full"`)
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	c, err := h.carts.AddItem(r.Context(), clientID, req.FoodID, variant, req.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.respondCart(w, http.StatusCreated, c, h.carts.SummaryOf(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	foodID := chi.URLParam(r, "food_id")
	variant, ok := parseVariant(chi.URLParam(r, "variant"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_variant", `variant must be "half" or "full"`)
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	c := h.carts.SetQuantity(r.Context(), clientID, foodID, variant, req.Quantity)
	h.respondCart(w, http.StatusOK, c, h.carts.SummaryOf(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	foodID := chi.URLParam(r, "food_id")
	variant, ok := parseVariant(chi.URLParam(r, "variant"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_variant", `variant must be "half" or "full"`)
		return
	}

	c := h.carts.RemoveItem(r.Context(), clientID, foodID, variant)
	h.respondCart(w, http.StatusOK, c, h.carts.SummaryOf(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	c := h.carts.Clear(r.Context(), clientID)
	h.respondCart(w, http.StatusOK, c, h.carts.SummaryOf(c))
}

func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	var req ApplyPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.carts.ApplyPromo(r.Context(), clientID, req.Code)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.respondCart(w, http.StatusOK, c, h.carts.SummaryOf(c))
}

func (h *CartHandler) RemovePromo(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	c := h.carts.RemovePromo(r.Context(), clientID)
	h.respondCart(w, http.StatusOK, c, h.carts.SummaryOf(c))
}

type SummaryResponseDTO struct {
	Summary     cart.Summary          `json:"summary"`
	Fulfillment domain.DeliveryMethod `json:"fulfillment"`
	TotalDue    float64               `json:"total_due"`
}

// GetSummary returns the cart totals for the chosen fulfillment mode;
// pickup drops the delivery fee from the amount due.
func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDFromContext(r.Context())

	method := domain.DeliveryMethodDelivery
	if f := r.URL.Query().Get("fulfillment"); f != "" {
		method = domain.DeliveryMethod(f)
		if !method.Valid() {
			respondError(w, http.StatusBadRequest, "invalid_fulfillment", `fulfillment must be "delivery" or "pickup"`)
			return
		}
	}

	_, summary := h.carts.Summary(r.Context(), clientID)
	respondJSON(w, http.StatusOK, SummaryResponseDTO{
		Summary:     summary,
		Fulfillment: method,
		TotalDue:    summary.TotalFor(method),
	})
}

func parseVariant(s string) (domain.Variant, bool) {
	v := domain.Variant(s)
	return v, v.Valid()
}
