package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/intent"
	"github.com/tokopintar/product-advisor/internal/observability"
)

type stubGenerator struct {
	answer string
	err    error
}

func (s *stubGenerator) GenerateAnswer(context.Context, string) (string, error) {
	return s.answer, s.err
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Products: []catalog.Product{
			{ID: "p-1", Name: "Kamera Hemat", Category: "kamera", Brand: "Clix", Price: 2_500_000},
			{ID: "p-2", Name: "Laptop Kerja", Category: "laptop", Brand: "Acme", Price: 8_000_000, Description: "untuk kerja kantoran"},
			{ID: "p-3", Name: "Ponsel Andal", Category: "smartphone", Brand: "Bolt", Price: 3_000_000},
		},
	}
}

func newQueryHandler(gen advisor.AnswerGenerator) *QueryHandler {
	logger := observability.Nop()
	adv := advisor.New(logger, testCatalog(), intent.NewExtractor(logger), gen, nil, advisor.Config{})
	return NewQueryHandler(logger, adv)
}

func TestQueryHandler_Ask(t *testing.T) {
	h := newQueryHandler(&stubGenerator{answer: "Coba Kamera Hemat."})

	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask",
		strings.NewReader(`{"question": "rekomendasi kamera di bawah 3000000"}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp AskResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Coba Kamera Hemat.", resp.Answer)
	assert.Equal(t, "rekomendasi kamera di bawah 3000000", resp.Question)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p-1", resp.Products[0].ID)
	assert.Empty(t, resp.Note)
}

func TestQueryHandler_Ask_FallbackNote(t *testing.T) {
	h := newQueryHandler(&stubGenerator{answer: "Maaf, tidak ada."})

	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask",
		strings.NewReader(`{"question": "kamera maksimal 1000"}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AskResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Products)
	assert.Equal(t, advisor.DefaultFallbackNote, resp.Note)
}

func TestQueryHandler_Ask_BadRequests(t *testing.T) {
	h := newQueryHandler(&stubGenerator{answer: "ok"})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"question": `},
		{"missing question", `{}`},
		{"blank question", `{"question": "   "}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/queries/ask", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Ask(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestQueryHandler_Ask_GeneratorFailure(t *testing.T) {
	h := newQueryHandler(&stubGenerator{err: errors.New("quota exceeded")})

	req := httptest.NewRequest(http.MethodPost, "/api/queries/ask",
		strings.NewReader(`{"question": "rekomendasi laptop"}`))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to answer question", resp["error"], "internal error detail is not leaked")
}

func TestQueryHandler_Suggestions(t *testing.T) {
	h := newQueryHandler(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/queries/suggestions", nil)
	rec := httptest.NewRecorder()
	h.Suggestions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SuggestionsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Suggestions)
}

func TestQueryHandler_Categories(t *testing.T) {
	h := newQueryHandler(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/queries/categories", nil)
	rec := httptest.NewRecorder()
	h.Categories(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CategoriesResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Categories, "smartphone")
	assert.Contains(t, resp.Categories, "kamera")
}
