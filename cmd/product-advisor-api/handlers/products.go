package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/observability"
)

// ProductsHandler serves the read-only product endpoints.
type ProductsHandler struct {
	logger  *observability.Logger
	catalog *catalog.Catalog
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(logger *observability.Logger, cat *catalog.Catalog) *ProductsHandler {
	return &ProductsHandler{
		logger:  logger,
		catalog: cat,
	}
}

// List handles GET /api/products/ with optional category, search, max_price,
// and limit query parameters.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := catalog.FilterParams{
		Category: strings.ToLower(strings.TrimSpace(q.Get("category"))),
	}

	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		params.MaxPrice = &maxPrice
	}

	products := catalog.Filter(h.catalog.Products, params)
	if term := q.Get("search"); term != "" {
		products = catalog.Search(products, term)
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if limit < len(products) {
			products = products[:limit]
		}
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{productID}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, ok := catalog.ByID(h.catalog.Products, id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}
