// Package main provides the API router setup.
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tokopintar/product-advisor/cmd/product-advisor-api/handlers"
	"github.com/tokopintar/product-advisor/cmd/product-advisor-api/middleware"
	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/observability"
)

// RouterConfig holds router-level settings.
type RouterConfig struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, adv *advisor.Advisor, cat *catalog.Catalog, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	// Health checks (no catalog or AI dependency)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"product-advisor"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	queryHandler := handlers.NewQueryHandler(logger, adv)
	productsHandler := handlers.NewProductsHandler(logger, cat)

	r.Route("/api", func(r chi.Router) {
		r.Route("/queries", func(r chi.Router) {
			r.Post("/ask", queryHandler.Ask)
			r.Get("/suggestions", queryHandler.Suggestions)
			r.Get("/categories", queryHandler.Categories)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productsHandler.List)
			r.Get("/{productID}", productsHandler.Get)
		})
	})

	return r
}
