package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/intent"
	"github.com/tokopintar/product-advisor/internal/observability"
)

type fixedGenerator struct{ answer string }

func (g fixedGenerator) GenerateAnswer(context.Context, string) (string, error) {
	return g.answer, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := observability.Nop()

	cat := &catalog.Catalog{
		Products: []catalog.Product{
			{ID: "p-1", Name: "Kamera Hemat", Category: "kamera", Brand: "Clix", Price: 2_500_000},
			{ID: "p-2", Name: "Laptop Kerja", Category: "laptop", Brand: "Acme", Price: 8_000_000},
		},
	}

	adv := advisor.New(logger, cat, intent.NewExtractor(logger), fixedGenerator{answer: "ok"}, nil, advisor.Config{})

	return NewRouter(logger, adv, cat, RouterConfig{
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"ready", http.MethodGet, "/ready", "", http.StatusOK},
		{"ask", http.MethodPost, "/api/queries/ask", `{"question": "kamera murah"}`, http.StatusOK},
		{"suggestions", http.MethodGet, "/api/queries/suggestions", "", http.StatusOK},
		{"categories", http.MethodGet, "/api/queries/categories", "", http.StatusOK},
		{"products list", http.MethodGet, "/api/products/", "", http.StatusOK},
		{"product by id", http.MethodGet, "/api/products/p-1", "", http.StatusOK},
		{"product missing", http.MethodGet, "/api/products/nope", "", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{"ask wrong method", http.MethodGet, "/api/queries/ask", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var reqBody *strings.Reader
			if tc.body != "" {
				reqBody = strings.NewReader(tc.body)
			} else {
				reqBody = strings.NewReader("")
			}

			req := httptest.NewRequest(tc.method, tc.path, reqBody)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRouter_AskEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask",
		strings.NewReader(`{"question": "rekomendasi kamera di bawah 3000000"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Answer   string            `json:"answer"`
		Products []catalog.Product `json:"products"`
		Note     string            `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Answer)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p-1", resp.Products[0].ID)
	assert.Empty(t, resp.Note)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/queries/ask", nil)
	req.Header.Set("Origin", "https://toko.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://toko.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
