package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type contextKey string

const clientIDKey contextKey = "client_id"

// ClientIDCookie is the anonymous device identity that scopes a cart.
const ClientIDCookie = "fastbite_client_id"

// ClientIDMiddleware reads the client identity cookie, minting one on first
// visit. Every storefront request downstream can rely on a client id being
// present in the context.
func ClientIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var clientID string
		if c, err := r.Cookie(ClientIDCookie); err == nil && c.Value != "" {
			if _, err := uuid.Parse(c.Value); err == nil {
				clientID = c.Value
			}
		}
		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int((90 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey).(string); ok {
		return id
	}
	return ""
}

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware records per-route request counts and latency. The chi
// route pattern is used as the path label so ids don't explode cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}

		duration := float64(time.Since(start).Milliseconds())
		httpRequests.WithLabelValues(r.Method, path, http.StatusText(ww.Status())).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}
