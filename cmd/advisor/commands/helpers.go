package commands

import (
	"context"
	"fmt"

	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/cache"
	"github.com/tokopintar/product-advisor/internal/catalog"
	"github.com/tokopintar/product-advisor/internal/config"
	"github.com/tokopintar/product-advisor/internal/genai"
	"github.com/tokopintar/product-advisor/internal/intent"
	"github.com/tokopintar/product-advisor/internal/observability"
)

// askAdvisor is the slice of the Advisor that answering commands need.
type askAdvisor interface {
	Ask(ctx context.Context, question string) (*advisor.Response, error)
}

// cliLogger builds a console logger honoring the --verbose flag. CLI output
// goes through the ui package; the logger only carries diagnostics.
func cliLogger(cfg *config.Config) *observability.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: cfg.Observability.ServiceName,
	})
}

// loadCatalog loads the configured catalog file.
func loadCatalog(cfg *config.Config, logger *observability.Logger) *catalog.Catalog {
	return catalog.NewLoader(logger, cfg.Catalog.Path).Load()
}

// buildAdvisor wires a fully local advisor: catalog, extractor, GenAI client,
// and an in-memory answer cache.
func buildAdvisor(cfg *config.Config, logger *observability.Logger) (*advisor.Advisor, *catalog.Catalog, error) {
	cat := loadCatalog(cfg, logger)

	generator, err := genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		BaseURL: cfg.GenAI.BaseURL,
		Timeout: cfg.GenAI.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create GenAI client (is GEMINI_API_KEY set?): %w", err)
	}

	adv := advisor.New(logger, cat, intent.NewExtractor(logger), generator,
		cache.NewMemoryClient(cfg.Cache.MaxEntries), advisor.Config{
			MaxResults:   cfg.Advisor.MaxResults,
			CacheAnswers: cfg.Advisor.CacheAnswers,
			CacheTTL:     cfg.Cache.TTL,
		})

	return adv, cat, nil
}
