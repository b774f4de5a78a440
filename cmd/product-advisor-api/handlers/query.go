// Package handlers provides HTTP handlers for the Product Advisor API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/observability"
)

// QueryHandler handles natural-language question requests.
type QueryHandler struct {
	logger  *observability.Logger
	advisor *advisor.Advisor
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(logger *observability.Logger, adv *advisor.Advisor) *QueryHandler {
	return &QueryHandler{
		logger:  logger,
		advisor: adv,
	}
}

// AskRequestDTO represents the ask request body.
type AskRequestDTO struct {
	Question string `json:"question"`
}

// AskResponseDTO represents the ask response payload.
type AskResponseDTO struct {
	Answer   string            `json:"answer"`
	Products []catalog.Product `json:"products"`
	Question string            `json:"question"`
	Note     string            `json:"note"`
}

// SuggestionsResponseDTO represents the suggestions payload.
type SuggestionsResponseDTO struct {
	Suggestions []string `json:"suggestions"`
}

// CategoriesResponseDTO represents the categories payload.
type CategoriesResponseDTO struct {
	Categories []string `json:"categories"`
}

// Ask handles POST /api/queries/ask.
func (h *QueryHandler) Ask(w http.ResponseWriter, r *http.Request) {
	// Tag the request so advisor log lines can be correlated.
	ctx := observability.ContextWithQueryID(r.Context(), uuid.NewString())

	var reqDTO AskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(reqDTO.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	resp, err := h.advisor.Ask(ctx, reqDTO.Question)
	if err != nil {
		// Internal details stay in the log, not the response body.
		h.logger.WithContext(ctx).Error().
			Err(err).
			Str("question", reqDTO.Question).
			Msg("Failed to answer question")
		writeError(w, http.StatusInternalServerError, "failed to answer question")
		return
	}

	writeJSON(w, http.StatusOK, AskResponseDTO{
		Answer:   resp.Answer,
		Products: resp.Products,
		Question: resp.Question,
		Note:     resp.Note,
	})
}

// Suggestions handles GET /api/queries/suggestions.
func (h *QueryHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SuggestionsResponseDTO{Suggestions: h.advisor.Suggestions()})
}

// Categories handles GET /api/queries/categories.
func (h *QueryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponseDTO{Categories: h.advisor.Categories()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
