package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhishekode/aakash-sweets-restaurant/configs"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Carts    *service.CartService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Team     *service.TeamService
	Contacts *service.ContactService
}

// NewRouter builds the full HTTP surface: the public storefront API under
// /api/v1 and the token-guarded admin panel API under /api/v1/admin.
func NewRouter(cfg configs.Config, svcs Services) http.Handler {
	cartHandler := NewCartHandler(svcs.Carts)
	catalogHandler := NewCatalogHandler(svcs.Catalog)
	orderHandler := NewOrderHandler(svcs.Orders)
	teamHandler := NewTeamHandler(svcs.Team)
	contactHandler := NewContactHandler(svcs.Contacts)
	authz := NewAuthz(cfg)

	requestTimeout := cfg.HTTP.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Storefront
		r.Group(func(r chi.Router) {
			r.Use(ClientIDMiddleware)

			r.Get("/menu", catalogHandler.Menu)
			r.Get("/menu/{id}", catalogHandler.GetFood)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/team", teamHandler.List)
			r.Post("/contact", contactHandler.Submit)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Get("/summary", cartHandler.GetSummary)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{food_id}/{variant}", cartHandler.UpdateQuantity)
				r.Delete("/items/{food_id}/{variant}", cartHandler.RemoveItem)
				r.Post("/promo", cartHandler.ApplyPromo)
				r.Delete("/promo", cartHandler.RemovePromo)
			})

			r.Post("/checkout", orderHandler.Checkout)
		})

		// Admin panel
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authz.Login)

			r.Group(func(r chi.Router) {
				r.Use(authz.Require)

				r.Route("/foods", func(r chi.Router) {
					r.Get("/", catalogHandler.ListFoods)
					r.Post("/", catalogHandler.CreateFood)
					r.Get("/{id}", catalogHandler.GetFood)
					r.Put("/{id}", catalogHandler.UpdateFood)
					r.Delete("/{id}", catalogHandler.DeleteFood)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", catalogHandler.Categories)
					r.Post("/", catalogHandler.CreateCategory)
					r.Put("/{id}", catalogHandler.UpdateCategory)
					r.Delete("/{id}", catalogHandler.DeleteCategory)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", orderHandler.ListOrders)
					r.Get("/{id}", orderHandler.GetOrder)
					r.Put("/{id}/status", orderHandler.UpdateStatus)
				})

				r.Route("/team", func(r chi.Router) {
					r.Get("/", teamHandler.List)
					r.Post("/", teamHandler.Create)
					r.Put("/{id}", teamHandler.Update)
					r.Delete("/{id}", teamHandler.Delete)
				})

				r.Get("/contacts", contactHandler.List)
			})
		})
	})

	return r
}
