// Package advisor orchestrates question answering: intent extraction,
// catalog filtering, and the generative-AI call, combined into one response.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tokopintar/product-advisor/internal/cache"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/intent"
	"github.com/tokopintar/product-advisor/internal/observability"
)

// DefaultFallbackNote is the human-readable note attached when no catalog
// product matches the extracted constraints.
const DefaultFallbackNote = "Maaf, tidak ada produk di katalog yang cocok dengan kriteria Anda. Coba ubah kategori atau budget Anda."

// AnswerGenerator produces an answer for a grounded prompt. The production
// implementation is the GenAI client; tests substitute a stub.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// Config holds advisor settings.
type Config struct {
	MaxResults   int
	CacheAnswers bool
	CacheTTL     time.Duration
	FallbackNote string
}

// Advisor combines the immutable catalog, the intent extractor, and the AI
// backend into per-request responses. It holds no per-request state.
type Advisor struct {
	logger    *observability.Logger
	catalog   *catalog.Catalog
	extractor *intent.Extractor
	generator AnswerGenerator
	cache     cache.Client
	config    Config
}

// New creates an Advisor over an already loaded catalog.
func New(
	logger *observability.Logger,
	cat *catalog.Catalog,
	extractor *intent.Extractor,
	generator AnswerGenerator,
	cacheClient cache.Client,
	cfg Config,
) *Advisor {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.FallbackNote == "" {
		cfg.FallbackNote = DefaultFallbackNote
	}

	return &Advisor{
		logger:    logger,
		catalog:   cat,
		extractor: extractor,
		generator: generator,
		cache:     cacheClient,
		config:    cfg,
	}
}

// Response is the combined answer payload for a question.
type Response struct {
	Answer   string            `json:"answer"`
	Products []catalog.Product `json:"products"`
	Question string            `json:"question"`
	Note     string            `json:"note"`
}

// Ask answers a free-text question. Intent extraction and filtering are pure
// and synchronous; the only awaited operation is the AI call, whose failure
// is returned to the caller for the handler boundary to convert into a
// generic error response.
func (a *Advisor) Ask(ctx context.Context, question string) (*Response, error) {
	start := time.Now()
	logger := a.logger.WithContext(ctx)

	if a.config.CacheAnswers && a.cache != nil {
		if cached := a.checkCache(ctx, question); cached != nil {
			logger.Debug().Str("question", question).Msg("Answer cache hit")
			return cached, nil
		}
	}

	it := a.extractor.Extract(question)
	matches := catalog.Filter(a.catalog.Products, catalog.FilterParams{
		Category: it.Category,
		MaxPrice: it.MaxPrice,
	})

	// Without any constraint the filter passes the whole catalog through;
	// show a random selection instead of the same head of the list.
	if it.Category == "" && it.MaxPrice == nil {
		matches = catalog.Sample(matches, a.config.MaxResults)
	} else if len(matches) > a.config.MaxResults {
		matches = matches[:a.config.MaxResults]
	}

	answer, err := a.generator.GenerateAnswer(ctx, a.buildPrompt(question, matches))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	note := ""
	if len(matches) == 0 {
		note = a.config.FallbackNote
	}

	resp := &Response{
		Answer:   answer,
		Products: matches,
		Question: question,
		Note:     note,
	}

	if a.config.CacheAnswers && a.cache != nil {
		a.storeCache(ctx, question, resp)
	}

	logger.Info().
		Str("category", it.Category).
		Int("products", len(matches)).
		Dur("latency", time.Since(start)).
		Msg("Question answered")

	return resp, nil
}

// buildPrompt grounds the model on the matched products so the answer refers
// to items that actually exist in the catalog.
func (a *Advisor) buildPrompt(question string, products []catalog.Product) string {
	var b strings.Builder
	b.WriteString("Kamu adalah asisten belanja untuk toko elektronik. ")
	b.WriteString("Jawab pertanyaan pelanggan dengan singkat dan ramah dalam bahasa pertanyaannya.\n\n")

	if len(products) > 0 {
		b.WriteString("Produk yang tersedia:\n")
		for _, p := range products {
			fmt.Fprintf(&b, "- %s (%s, %s) seharga Rp %.0f: %s\n",
				p.Name, p.Brand, p.Category, p.Price, p.Description)
		}
		b.WriteString("\nRekomendasikan hanya dari daftar di atas.\n\n")
	} else {
		b.WriteString("Tidak ada produk di katalog yang cocok; sampaikan itu dengan sopan dan beri saran umum.\n\n")
	}

	b.WriteString("Pertanyaan: ")
	b.WriteString(question)
	return b.String()
}

// Suggestions returns example questions for the frontend.
func (a *Advisor) Suggestions() []string {
	return []string{
		"Rekomendasi laptop untuk kerja dengan harga maksimal 10 juta",
		"Ada hp bagus di bawah 5 juta?",
		"Kamera mirrorless untuk pemula",
		"Headphone dengan baterai tahan lama",
		"Tablet kurang dari 3.000.000 untuk anak sekolah",
	}
}

// Categories returns the canonical category names known to the extractor.
func (a *Advisor) Categories() []string {
	return a.extractor.Categories()
}

func (a *Advisor) checkCache(ctx context.Context, question string) *Response {
	data, err := a.cache.Get(ctx, cache.QuestionKey(question))
	if err != nil {
		return nil
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func (a *Advisor) storeCache(ctx context.Context, question string, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, cache.QuestionKey(question), data, a.config.CacheTTL); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to cache answer")
	}
}
