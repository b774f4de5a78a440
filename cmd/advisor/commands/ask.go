package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tokopintar/product-advisor/cmd/advisor/ui"
	"github.com/tokopintar/product-advisor/internal/config"
)

var askQuestion string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question about the product catalog",
	Long:  "Ask a natural-language question; without --question an interactive loop starts.",
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question to ask (optional, interactive mode if not provided)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ui.InitUI(noColor, verbose)

	logger := cliLogger(cfg)
	adv, cat, err := buildAdvisor(cfg, logger)
	if err != nil {
		return err
	}

	if cat.UsedFallback {
		ui.Warning("Catalog file could not be loaded; answers use the built-in fallback set.")
	}

	if askQuestion != "" {
		return askOnce(ctx, adv, askQuestion)
	}

	// Interactive loop
	for {
		question, err := ui.Prompt("Pertanyaan (atau 'quit' untuk keluar)")
		if err != nil {
			return fmt.Errorf("prompt error: %w", err)
		}

		question = strings.TrimSpace(question)
		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			return nil
		case "":
			continue
		}

		if err := askOnce(ctx, adv, question); err != nil {
			ui.Error("Query failed: %v", err)
		}
	}
}

func askOnce(ctx context.Context, adv askAdvisor, question string) error {
	spinner := ui.NewSpinner("Memikirkan jawaban...")
	spinner.Start()
	resp, err := adv.Ask(ctx, question)
	spinner.Stop()

	if err != nil {
		return err
	}

	ui.Section("Jawaban")
	ui.Message("%s", resp.Answer)
	ui.Newline()

	if len(resp.Products) > 0 {
		ui.Section("Produk Terkait")
		ui.ProductTable(resp.Products)
	}

	if resp.Note != "" {
		ui.Warning("%s", resp.Note)
	}

	return nil
}
