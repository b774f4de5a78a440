package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokopintar/product-advisor/cmd/advisor/ui"
	"github.com/tokopintar/product-advisor/internal/advisor"
	"github.com/tokopintar/product-advisor/internal/cache"
	"github.com/tokopintar/product-advisor/internal/config"
	"github.com/tokopintar/product-advisor/internal/intent"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show example questions",
	RunE:  runSuggestions,
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
}

func runSuggestions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ui.InitUI(noColor, verbose)

	// Suggestions need no AI backend; build the advisor without one.
	logger := cliLogger(cfg)
	cat := loadCatalog(cfg, logger)
	adv := advisor.New(logger, cat, intent.NewExtractor(logger), nil,
		cache.NewMemoryClient(cfg.Cache.MaxEntries), advisor.Config{})

	ui.Section("Contoh Pertanyaan")
	for _, s := range adv.Suggestions() {
		ui.Message("- %s", s)
	}
	return nil
}
